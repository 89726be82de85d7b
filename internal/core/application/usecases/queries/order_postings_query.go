package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrOrderPostingsQueryIsNotConstructed is returned when an
// OrderPostingsQuery was not created via NewOrderPostingsQuery.
var ErrOrderPostingsQueryIsNotConstructed = errors.New(
	"OrderPostingsQuery must be created via NewOrderPostingsQuery constructor",
)

// OrderPostingsQuery lists where an order's card has been posted, so
// every outward copy can be refreshed after a transition.
type OrderPostingsQuery struct {
	orderID kernel.OrderID

	guard kernel.ConstructorGuard
}

// NewOrderPostingsQuery validates the input and builds the query.
func NewOrderPostingsQuery(orderID kernel.OrderID) (OrderPostingsQuery, error) {
	if orderID == 0 {
		return OrderPostingsQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return OrderPostingsQuery{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderPostingsQuery) Validate() error {
	return q.guard.Validate(ErrOrderPostingsQueryIsNotConstructed)
}

// OrderID returns the order whose postings are listed.
func (q OrderPostingsQuery) OrderID() kernel.OrderID {
	return q.orderID
}
