package queries

import (
	"context"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/ports"
	"dilivry/internal/pkg/errs"
)

// UserProfileResponse is the read-side shape of a participant profile.
// PrivateChatID is the channel for messages addressed to the participant
// alone, derived from the id.
type UserProfileResponse struct {
	ID            kernel.UserID
	Username      string
	FirstName     string
	LastName      string
	DisplayName   string
	PrivateChatID kernel.ChatID
}

// UserProfileQueryHandler serves participant profile lookups.
type UserProfileQueryHandler struct {
	store ports.Store
}

// NewUserProfileQueryHandler creates a handler for profile lookups.
func NewUserProfileQueryHandler(store ports.Store) UserProfileQueryHandler {
	return UserProfileQueryHandler{store: store}
}

// Handle fetches the participant. Unknown ids are a not-found error,
// never an empty profile.
func (h UserProfileQueryHandler) Handle(ctx context.Context, query UserProfileQuery) (UserProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return UserProfileResponse{}, err
	}

	p, err := h.store.GetUser(ctx, query.UserID())
	if err != nil {
		return UserProfileResponse{}, err
	}
	if p == nil {
		return UserProfileResponse{}, errs.NewObjectNotFoundError("userId", query.UserID().String())
	}

	return UserProfileResponse{
		ID:            p.ID(),
		Username:      p.Username(),
		FirstName:     p.FirstName(),
		LastName:      p.LastName(),
		DisplayName:   p.DisplayName(),
		PrivateChatID: kernel.PrivateChatOf(p.ID()),
	}, nil
}
