package queries

import (
	"context"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/ports"
)

// OrderPostingsQueryHandler serves an order's posting locations.
type OrderPostingsQueryHandler struct {
	store ports.Store
}

// NewOrderPostingsQueryHandler creates a handler for posting lookups.
func NewOrderPostingsQueryHandler(store ports.Store) OrderPostingsQueryHandler {
	return OrderPostingsQueryHandler{store: store}
}

// Handle fetches the recorded postings. Orders without postings yield
// an empty list, not an error.
func (h OrderPostingsQueryHandler) Handle(ctx context.Context, query OrderPostingsQuery) ([]chat.Posting, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.store.Postings(ctx, query.OrderID())
}
