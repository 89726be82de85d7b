package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dilivry/internal/core/application/usecases/queries"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
)

func TestActiveAssignmentsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewActiveAssignmentsQuery(-1001, 22)
	require.NoError(t, err)

	o := publishedOrder(t, 5)
	assignee, err := participant.NewParticipant(22, "bob", "Bob", "")
	require.NoError(t, err)
	_, err = o.PerformAction(assignee, order.Action{OrderID: 5, Kind: order.AssignToMe})
	require.NoError(t, err)

	store := new(MockStore)
	store.On("ActiveAssignmentsTo", ctx, kernel.ChatID(-1001), kernel.UserID(22)).
		Return([]*order.Order{o}, nil).Once()

	h := queries.NewActiveAssignmentsQueryHandler(store)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Assigned", got[0].Status)
	assert.Equal(t, "@bob Bob", got[0].AssigneeName)
	store.AssertExpectations(t)
}

func TestNewActiveAssignmentsQuery_Invalid(t *testing.T) {
	_, err := queries.NewActiveAssignmentsQuery(0, 22)
	assert.Error(t, err)

	_, err = queries.NewActiveAssignmentsQuery(-1001, 0)
	assert.Error(t, err)
}
