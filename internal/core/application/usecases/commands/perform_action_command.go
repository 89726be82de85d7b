package commands

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/pkg/errs"
)

// ErrPerformActionCommandIsNotConstructed is returned when a
// PerformActionCommand was not created via NewPerformActionCommand.
var ErrPerformActionCommandIsNotConstructed = errors.New(
	"PerformActionCommand must be created via NewPerformActionCommand constructor",
)

// PerformActionCommand represents a participant pressing an action
// token against an order. The raw token is decoded here, so transport
// adapters can pass callback payloads through untouched.
type PerformActionCommand struct { //nolint:recvcheck //using for validation
	actor  participant.Participant
	chatID kernel.ChatID
	action order.Action

	guard kernel.ConstructorGuard
}

// NewPerformActionCommand decodes the token and builds the command. A
// token that does not decode yields a validation error, never a panic.
func NewPerformActionCommand(
	actor participant.Participant,
	chatID kernel.ChatID,
	token string,
) (PerformActionCommand, error) {
	command := PerformActionCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setChatID(chatID),
		command.setAction(token),
	); err != nil {
		return PerformActionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformActionCommand) Validate() error {
	return c.guard.Validate(ErrPerformActionCommandIsNotConstructed)
}

// Actor returns the participant performing the action.
func (c PerformActionCommand) Actor() participant.Participant {
	return c.actor
}

// ChatID returns the public chat the order lives in.
func (c PerformActionCommand) ChatID() kernel.ChatID {
	return c.chatID
}

// Action returns the decoded action.
func (c PerformActionCommand) Action() order.Action {
	return c.action
}

func (c *PerformActionCommand) setActor(actor participant.Participant) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PerformActionCommand) setChatID(chatID kernel.ChatID) error {
	if chatID == 0 || chatID.IsPrivate() {
		return errs.NewValueIsInvalidError("chatId")
	}

	c.chatID = chatID
	return nil
}

func (c *PerformActionCommand) setAction(token string) error {
	action, ok := order.ParseToken(token)
	if !ok {
		return errs.NewValueIsInvalidError("actionToken")
	}

	c.action = action
	return nil
}
