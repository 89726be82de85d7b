package commands

import (
	"context"

	"dilivry/internal/core/ports"
)

// RemoveMemberCommandHandler severs chat memberships. Removal is
// idempotent, dropping an absent membership succeeds.
type RemoveMemberCommandHandler struct {
	store ports.Store
}

// NewRemoveMemberCommandHandler creates a handler for membership removal.
func NewRemoveMemberCommandHandler(store ports.Store) RemoveMemberCommandHandler {
	return RemoveMemberCommandHandler{store: store}
}

// Handle drops the membership.
func (h *RemoveMemberCommandHandler) Handle(ctx context.Context, cmd RemoveMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.RemoveMember(ctx, cmd.ChatID(), cmd.UserID())
}
