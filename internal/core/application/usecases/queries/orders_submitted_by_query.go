package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrOrdersSubmittedByQueryIsNotConstructed is returned when an
// OrdersSubmittedByQuery was not created via NewOrdersSubmittedByQuery.
var ErrOrdersSubmittedByQueryIsNotConstructed = errors.New(
	"OrdersSubmittedByQuery must be created via NewOrdersSubmittedByQuery constructor",
)

// OrdersSubmittedByQuery lists every order a participant owns in one
// chat, regardless of status.
type OrdersSubmittedByQuery struct {
	chatID kernel.ChatID
	userID kernel.UserID

	guard kernel.ConstructorGuard
}

// NewOrdersSubmittedByQuery validates the inputs and builds the query.
func NewOrdersSubmittedByQuery(chatID kernel.ChatID, userID kernel.UserID) (OrdersSubmittedByQuery, error) {
	if chatID == 0 || chatID.IsPrivate() {
		return OrdersSubmittedByQuery{}, errs.NewValueIsInvalidError("chatId")
	}
	if userID == 0 {
		return OrdersSubmittedByQuery{}, errs.NewValueIsRequiredError("userId")
	}

	return OrdersSubmittedByQuery{
		chatID: chatID,
		userID: userID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrdersSubmittedByQuery) Validate() error {
	return q.guard.Validate(ErrOrdersSubmittedByQueryIsNotConstructed)
}

// ChatID returns the chat being browsed.
func (q OrdersSubmittedByQuery) ChatID() kernel.ChatID {
	return q.chatID
}

// UserID returns the owner whose orders are listed.
func (q OrdersSubmittedByQuery) UserID() kernel.UserID {
	return q.userID
}
