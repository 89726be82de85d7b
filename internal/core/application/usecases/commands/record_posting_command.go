package commands

import (
	"errors"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrRecordPostingCommandIsNotConstructed is returned when a
// RecordPostingCommand was not created via NewRecordPostingCommand.
var ErrRecordPostingCommandIsNotConstructed = errors.New(
	"RecordPostingCommand must be created via NewRecordPostingCommand constructor",
)

// RecordPostingCommand remembers where an order card was posted, so the
// outward copies can be refreshed or withdrawn later.
type RecordPostingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	posting chat.Posting

	guard kernel.ConstructorGuard
}

// NewRecordPostingCommand validates the inputs and builds the command.
func NewRecordPostingCommand(orderID kernel.OrderID, posting chat.Posting) (RecordPostingCommand, error) {
	command := RecordPostingCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPosting(posting),
	); err != nil {
		return RecordPostingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPostingCommand) Validate() error {
	return c.guard.Validate(ErrRecordPostingCommandIsNotConstructed)
}

// OrderID returns the order the posting belongs to.
func (c RecordPostingCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Posting returns the message location to remember.
func (c RecordPostingCommand) Posting() chat.Posting {
	return c.posting
}

func (c *RecordPostingCommand) setOrderID(orderID kernel.OrderID) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPostingCommand) setPosting(posting chat.Posting) error {
	if posting.ChatID == 0 {
		return errs.NewValueIsRequiredError("posting.chatId")
	}
	if posting.MessageID == 0 {
		return errs.NewValueIsRequiredError("posting.messageId")
	}

	c.posting = posting
	return nil
}
