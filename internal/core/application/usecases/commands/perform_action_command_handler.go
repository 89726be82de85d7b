package commands

import (
	"context"

	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/ports"
)

// PerformActionResult reports the outcome of an executed action.
// Order is nil when the action deleted the order.
type PerformActionResult struct {
	PreviousStatus order.Status
	Order          *order.Order
}

// PerformActionCommandHandler executes order transitions through the
// store, which re-checks permissions against the live state.
type PerformActionCommandHandler struct {
	store ports.Store
}

// NewPerformActionCommandHandler creates a handler for order actions.
func NewPerformActionCommandHandler(store ports.Store) PerformActionCommandHandler {
	return PerformActionCommandHandler{store: store}
}

// Handle runs the action atomically against the store.
func (h *PerformActionCommandHandler) Handle(ctx context.Context, cmd PerformActionCommand) (PerformActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return PerformActionResult{}, err
	}

	prev, updated, err := h.store.PerformAction(ctx, cmd.Actor(), cmd.ChatID(), cmd.Action())
	if err != nil {
		return PerformActionResult{}, err
	}

	return PerformActionResult{PreviousStatus: prev, Order: updated}, nil
}
