package queries

import (
	"context"

	"dilivry/internal/core/ports"
)

// OrdersByStatusQueryHandler serves status-filtered chat listings.
type OrdersByStatusQueryHandler struct {
	store ports.Store
}

// NewOrdersByStatusQueryHandler creates a handler for status listings.
func NewOrdersByStatusQueryHandler(store ports.Store) OrdersByStatusQueryHandler {
	return OrdersByStatusQueryHandler{store: store}
}

// Handle fetches the matching orders and maps them to responses.
func (h OrdersByStatusQueryHandler) Handle(ctx context.Context, query OrdersByStatusQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.OrdersByStatus(ctx, query.ChatID(), query.Status())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
