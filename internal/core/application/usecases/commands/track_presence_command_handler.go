package commands

import (
	"context"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/ports"
)

// TrackPresenceCommandHandler keeps participant, chat and membership
// records fresh from every observed interaction.
type TrackPresenceCommandHandler struct {
	store ports.Store
}

// NewTrackPresenceCommandHandler creates a handler for presence tracking.
func NewTrackPresenceCommandHandler(store ports.Store) TrackPresenceCommandHandler {
	return TrackPresenceCommandHandler{store: store}
}

// Handle upserts the participant record, and for public chat sightings
// refreshes the chat metadata and the membership.
func (h *TrackPresenceCommandHandler) Handle(ctx context.Context, cmd TrackPresenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.store.UpdateUser(ctx, cmd.User()); err != nil {
		return err
	}
	if !cmd.InPublicChat() {
		return nil
	}

	c, err := chat.NewPublicChat(cmd.ChatID(), cmd.ChatTitle())
	if err != nil {
		return err
	}
	if err := h.store.UpdateChat(ctx, c); err != nil {
		return err
	}

	return h.store.AddMembers(ctx, cmd.ChatID(), []kernel.UserID{cmd.User().ID()})
}
