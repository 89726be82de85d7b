package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/pkg/errs"
)

// ErrOrdersByStatusQueryIsNotConstructed is returned when an
// OrdersByStatusQuery was not created via NewOrdersByStatusQuery.
var ErrOrdersByStatusQueryIsNotConstructed = errors.New(
	"OrdersByStatusQuery must be created via NewOrdersByStatusQuery constructor",
)

// OrdersByStatusQuery lists a chat's orders in one derived status, for
// example the published orders a would-be assignee can browse.
type OrdersByStatusQuery struct {
	chatID kernel.ChatID
	status order.Status

	guard kernel.ConstructorGuard
}

// NewOrdersByStatusQuery validates the inputs and builds the query.
func NewOrdersByStatusQuery(chatID kernel.ChatID, status order.Status) (OrdersByStatusQuery, error) {
	if chatID == 0 || chatID.IsPrivate() {
		return OrdersByStatusQuery{}, errs.NewValueIsInvalidError("chatId")
	}
	if status < order.Unpublished || status > order.DeliveryConfirmed {
		return OrdersByStatusQuery{}, errs.NewValueIsInvalidError("status")
	}

	return OrdersByStatusQuery{
		chatID: chatID,
		status: status,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrOrdersByStatusQueryIsNotConstructed)
}

// ChatID returns the chat being browsed.
func (q OrdersByStatusQuery) ChatID() kernel.ChatID {
	return q.chatID
}

// Status returns the derived status to filter by.
func (q OrdersByStatusQuery) Status() order.Status {
	return q.status
}
