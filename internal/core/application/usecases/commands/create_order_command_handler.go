package commands

import (
	"context"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/ports"
)

// CreateOrderCommandHandler files new order drafts into the store.
type CreateOrderCommandHandler struct {
	store ports.Store
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(store ports.Store) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{store: store}
}

// Handle builds the draft aggregate and persists it, returning the id
// the store assigned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	draft, err := order.NewOrder(
		cmd.Customer(),
		cmd.Name(),
		cmd.Description(),
		cmd.PriceAMD(),
		cmd.DeliveryReward(),
		cmd.Urgency(),
	)
	if err != nil {
		return 0, err
	}

	return h.store.AddOrder(ctx, cmd.ChatID(), draft)
}
