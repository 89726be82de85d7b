package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dilivry/internal/core/application/usecases/queries"
	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
)

func TestOrderPostingsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewOrderPostingsQuery(7)
	require.NoError(t, err)

	want := []chat.Posting{
		{ChatID: -1001, MessageID: 4},
		{ChatID: -1001, MessageID: 9},
	}
	store := new(MockStore)
	store.On("Postings", ctx, kernel.OrderID(7)).Return(want, nil).Once()

	h := queries.NewOrderPostingsQueryHandler(store)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewOrderPostingsQuery_Invalid(t *testing.T) {
	_, err := queries.NewOrderPostingsQuery(0)
	assert.Error(t, err)
}
