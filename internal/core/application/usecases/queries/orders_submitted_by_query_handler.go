package queries

import (
	"context"

	"dilivry/internal/core/ports"
)

// OrdersSubmittedByQueryHandler serves per-owner chat listings.
type OrdersSubmittedByQueryHandler struct {
	store ports.Store
}

// NewOrdersSubmittedByQueryHandler creates a handler for owner listings.
func NewOrdersSubmittedByQueryHandler(store ports.Store) OrdersSubmittedByQueryHandler {
	return OrdersSubmittedByQueryHandler{store: store}
}

// Handle fetches the owner's orders and maps them to responses.
func (h OrdersSubmittedByQueryHandler) Handle(ctx context.Context, query OrdersSubmittedByQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.OrdersSubmittedBy(ctx, query.ChatID(), query.UserID())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
