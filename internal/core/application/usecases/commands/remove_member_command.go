package commands

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrRemoveMemberCommandIsNotConstructed is returned when a
// RemoveMemberCommand was not created via NewRemoveMemberCommand.
var ErrRemoveMemberCommandIsNotConstructed = errors.New(
	"RemoveMemberCommand must be created via NewRemoveMemberCommand constructor",
)

// RemoveMemberCommand drops a participant's membership in a public
// chat, typically after they left or were kicked.
type RemoveMemberCommand struct { //nolint:recvcheck //using for validation
	chatID kernel.ChatID
	userID kernel.UserID

	guard kernel.ConstructorGuard
}

// NewRemoveMemberCommand validates the inputs and builds the command.
func NewRemoveMemberCommand(chatID kernel.ChatID, userID kernel.UserID) (RemoveMemberCommand, error) {
	command := RemoveMemberCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChatID(chatID),
		command.setUserID(userID),
	); err != nil {
		return RemoveMemberCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMemberCommandIsNotConstructed)
}

// ChatID returns the chat the membership is dropped from.
func (c RemoveMemberCommand) ChatID() kernel.ChatID {
	return c.chatID
}

// UserID returns whose membership is dropped.
func (c RemoveMemberCommand) UserID() kernel.UserID {
	return c.userID
}

func (c *RemoveMemberCommand) setChatID(chatID kernel.ChatID) error {
	if chatID == 0 || chatID.IsPrivate() {
		return errs.NewValueIsInvalidError("chatId")
	}

	c.chatID = chatID
	return nil
}

func (c *RemoveMemberCommand) setUserID(userID kernel.UserID) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}
