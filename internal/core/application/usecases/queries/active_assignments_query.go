package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrActiveAssignmentsQueryIsNotConstructed is returned when an
// ActiveAssignmentsQuery was not created via NewActiveAssignmentsQuery.
var ErrActiveAssignmentsQueryIsNotConstructed = errors.New(
	"ActiveAssignmentsQuery must be created via NewActiveAssignmentsQuery constructor",
)

// ActiveAssignmentsQuery lists the orders a participant currently holds
// in one chat, meaning assigned or delivered but not yet confirmed.
type ActiveAssignmentsQuery struct {
	chatID kernel.ChatID
	userID kernel.UserID

	guard kernel.ConstructorGuard
}

// NewActiveAssignmentsQuery validates the inputs and builds the query.
func NewActiveAssignmentsQuery(chatID kernel.ChatID, userID kernel.UserID) (ActiveAssignmentsQuery, error) {
	if chatID == 0 || chatID.IsPrivate() {
		return ActiveAssignmentsQuery{}, errs.NewValueIsInvalidError("chatId")
	}
	if userID == 0 {
		return ActiveAssignmentsQuery{}, errs.NewValueIsRequiredError("userId")
	}

	return ActiveAssignmentsQuery{
		chatID: chatID,
		userID: userID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ActiveAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrActiveAssignmentsQueryIsNotConstructed)
}

// ChatID returns the chat being browsed.
func (q ActiveAssignmentsQuery) ChatID() kernel.ChatID {
	return q.chatID
}

// UserID returns the assignee whose workload is listed.
func (q ActiveAssignmentsQuery) UserID() kernel.UserID {
	return q.userID
}
