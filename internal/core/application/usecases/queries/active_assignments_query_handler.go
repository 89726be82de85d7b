package queries

import (
	"context"

	"dilivry/internal/core/ports"
)

// ActiveAssignmentsQueryHandler serves a courier's current workload.
type ActiveAssignmentsQueryHandler struct {
	store ports.Store
}

// NewActiveAssignmentsQueryHandler creates a handler for workload listings.
func NewActiveAssignmentsQueryHandler(store ports.Store) ActiveAssignmentsQueryHandler {
	return ActiveAssignmentsQueryHandler{store: store}
}

// Handle fetches the held orders and maps them to responses.
func (h ActiveAssignmentsQueryHandler) Handle(ctx context.Context, query ActiveAssignmentsQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.ActiveAssignmentsTo(ctx, query.ChatID(), query.UserID())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
