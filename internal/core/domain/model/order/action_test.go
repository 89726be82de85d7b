package order_test

import (
	"fmt"
	"math"
	"testing"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTokenRoundTrip(t *testing.T) {
	ids := []kernel.OrderID{1, 42, 1000000, math.MaxUint64}
	for _, kind := range order.AllActionKinds() {
		for _, id := range ids {
			tok := order.Action{OrderID: id, Kind: kind}.Token()
			parsed, ok := order.ParseToken(tok)
			require.True(t, ok, "token %q", tok)
			assert.Equal(t, id, parsed.OrderID)
			assert.Equal(t, kind, parsed.Kind)
		}
	}
}

func TestTokenFormat(t *testing.T) {
	tok := order.Action{OrderID: 42, Kind: order.Publish}.Token()
	assert.Equal(t, "oa publish 42", tok)
}

func TestParseTokenRejectsForeignData(t *testing.T) {
	bad := []string{
		"",
		"oa",
		"oa publish",
		"oa publish 42 extra",
		"xx publish 42",
		"oa fly_to_moon 42",
		"oa publish notanumber",
		"oa publish -1",
		"oa publish 18446744073709551616", // one past MaxUint64
		"oa publish 42 ",
		" oa publish 42",
		"oa  publish 42",
		"OA publish 42",
		"oa Publish 42",
	}
	for _, data := range bad {
		_, ok := order.ParseToken(data)
		assert.False(t, ok, "data %q must not parse", data)
	}
}

func TestParseTokenNeverPanics(t *testing.T) {
	garbage := []string{"\x00\x01", "oa \x00 3", "   ", "oa oa oa", "42 publish oa"}
	for _, data := range garbage {
		assert.NotPanics(t, func() {
			_, _ = order.ParseToken(data)
		})
	}
}

func TestActionKindIDsAreUniqueAndStable(t *testing.T) {
	seen := map[string]order.ActionKind{}
	for _, kind := range order.AllActionKinds() {
		id := kind.ID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = kind

		back, ok := order.ActionKindFromID(id)
		require.True(t, ok)
		assert.Equal(t, kind, back)
	}

	// The ids are a wire format; a rename would strand tokens already
	// embedded in messages out in the world.
	assert.Equal(t, map[string]order.ActionKind{
		"publish":           order.Publish,
		"cancel":            order.Cancel,
		"assign_to_me":      order.AssignToMe,
		"unassign":          order.Unassign,
		"mark_as_delivered": order.MarkAsDelivered,
		"confirm_delivery":  order.ConfirmDelivery,
		"delete":            order.Delete,
	}, seen)
}

func TestActionKindHumanNames(t *testing.T) {
	for _, kind := range order.AllActionKinds() {
		assert.NotEmpty(t, kind.HumanName())
		assert.NotEqual(t, "Unknown action", kind.HumanName(), fmt.Sprintf("kind %d", kind))
	}
}
