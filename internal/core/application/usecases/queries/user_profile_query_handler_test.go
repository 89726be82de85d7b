package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dilivry/internal/core/application/usecases/queries"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/pkg/errs"
)

func TestUserProfileQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewUserProfileQuery(11)
	require.NoError(t, err)

	alice, err := participant.NewParticipant(11, "alice", "Alice", "")
	require.NoError(t, err)

	store := new(MockStore)
	store.On("GetUser", ctx, kernel.UserID(11)).Return(&alice, nil).Once()

	h := queries.NewUserProfileQueryHandler(store)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, kernel.UserID(11), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, alice.DisplayName(), got.DisplayName)
	assert.Equal(t, kernel.ChatID(11), got.PrivateChatID)
}

func TestUserProfileQueryHandler_Handle_Unknown(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewUserProfileQuery(99)
	require.NoError(t, err)

	store := new(MockStore)
	store.On("GetUser", ctx, kernel.UserID(99)).Return(nil, nil).Once()

	h := queries.NewUserProfileQueryHandler(store)
	_, err = h.Handle(ctx, query)

	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestNewUserProfileQuery_Invalid(t *testing.T) {
	_, err := queries.NewUserProfileQuery(0)
	assert.Error(t, err)
}
