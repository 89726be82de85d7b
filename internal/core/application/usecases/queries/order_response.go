package queries

import (
	"time"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
)

// OrderResponse is the read-side shape of an order shared by the order
// listing queries. Actions carries encoded tokens for the transitions
// any chat member may take, ready to be attached to buttons.
type OrderResponse struct {
	ID             kernel.OrderID
	Name           string
	Description    string
	PriceAMD       uint64
	DeliveryReward uint64
	Urgency        string
	Status         string
	CustomerName   string
	AssigneeName   string
	CreatedAt      time.Time
	Actions        []string
}

// NewOrderResponse maps an order aggregate to its read-side shape.
func NewOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID(),
		Name:           o.Name(),
		Description:    o.Description(),
		PriceAMD:       o.PriceAMD(),
		DeliveryReward: o.DeliveryReward(),
		Urgency:        o.Urgency().HumanName(),
		Status:         o.Status().String(),
		CustomerName:   o.Customer().DisplayName(),
		CreatedAt:      o.CreatedAt(),
	}

	if a := o.Assignment(); a != nil && a.Profile != nil {
		resp.AssigneeName = a.Profile.DisplayName()
	}

	for _, kind := range o.PublicActions() {
		resp.Actions = append(resp.Actions, order.Action{OrderID: o.ID(), Kind: kind}.Token())
	}
	return resp
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, NewOrderResponse(o))
	}
	return res
}
