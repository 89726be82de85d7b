package queries

import (
	"context"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/ports"
)

// ResolvePublicChatQueryHandler maps interactions to their public chat.
type ResolvePublicChatQueryHandler struct {
	store ports.Store
}

// NewResolvePublicChatQueryHandler creates a handler for venue resolution.
func NewResolvePublicChatQueryHandler(store ports.Store) ResolvePublicChatQueryHandler {
	return ResolvePublicChatQueryHandler{store: store}
}

// Handle resolves the venue. Without a direct chat the participant's
// memberships must name exactly one candidate: none yields
// ports.ErrNotInAnyChat, several yield ports.ErrMultipleChats.
func (h ResolvePublicChatQueryHandler) Handle(ctx context.Context, query ResolvePublicChatQuery) (chat.Ref, error) {
	if err := query.Validate(); err != nil {
		return chat.Ref{}, err
	}

	refs, err := h.store.ChatsOf(ctx, query.UserID())
	if err != nil {
		return chat.Ref{}, err
	}

	if direct := query.DirectChatID(); direct != 0 {
		for _, ref := range refs {
			if ref.ID == direct {
				return ref, nil
			}
		}
		// The interaction proves the chat context even when the
		// membership record has not caught up yet.
		return chat.Ref{ID: direct}, nil
	}

	switch len(refs) {
	case 0:
		return chat.Ref{}, ports.ErrNotInAnyChat
	case 1:
		return refs[0], nil
	default:
		return chat.Ref{}, ports.ErrMultipleChats
	}
}
