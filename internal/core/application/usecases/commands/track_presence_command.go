package commands

import (
	"errors"
	"strings"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/pkg/errs"
)

// ErrTrackPresenceCommandIsNotConstructed is returned when a
// TrackPresenceCommand was not created via NewTrackPresenceCommand.
var ErrTrackPresenceCommandIsNotConstructed = errors.New(
	"TrackPresenceCommand must be created via NewTrackPresenceCommand constructor",
)

// TrackPresenceCommand records a sighting of a participant. When the
// sighting happened in a public chat it also refreshes the chat's title
// and the participant's membership there; sightings from private chats
// refresh the participant record only.
type TrackPresenceCommand struct { //nolint:recvcheck //using for validation
	user      participant.Participant
	chatID    kernel.ChatID
	chatTitle string

	guard kernel.ConstructorGuard
}

// NewTrackPresenceCommand validates the inputs and builds the command.
// For public chat sightings a non-blank title is required.
func NewTrackPresenceCommand(
	user participant.Participant,
	chatID kernel.ChatID,
	chatTitle string,
) (TrackPresenceCommand, error) {
	command := TrackPresenceCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUser(user),
		command.setChat(chatID, chatTitle),
	); err != nil {
		return TrackPresenceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackPresenceCommand) Validate() error {
	return c.guard.Validate(ErrTrackPresenceCommandIsNotConstructed)
}

// User returns the sighted participant.
func (c TrackPresenceCommand) User() participant.Participant {
	return c.user
}

// ChatID returns where the sighting happened.
func (c TrackPresenceCommand) ChatID() kernel.ChatID {
	return c.chatID
}

// ChatTitle returns the chat title as seen at sighting time. Empty for
// private chats.
func (c TrackPresenceCommand) ChatTitle() string {
	return c.chatTitle
}

// InPublicChat reports whether the sighting happened in a public chat.
func (c TrackPresenceCommand) InPublicChat() bool {
	return !c.chatID.IsPrivate()
}

func (c *TrackPresenceCommand) setUser(user participant.Participant) error {
	if err := user.Validate(); err != nil {
		return err
	}

	c.user = user
	return nil
}

func (c *TrackPresenceCommand) setChat(chatID kernel.ChatID, title string) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatId")
	}
	if !chatID.IsPrivate() && strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("chatTitle")
	}

	c.chatID = chatID
	c.chatTitle = title
	return nil
}
