package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrResolvePublicChatQueryIsNotConstructed is returned when a
// ResolvePublicChatQuery was not created via NewResolvePublicChatQuery.
var ErrResolvePublicChatQueryIsNotConstructed = errors.New(
	"ResolvePublicChatQuery must be created via NewResolvePublicChatQuery constructor",
)

// ResolvePublicChatQuery determines which public chat an interaction
// applies to. When the interaction itself happened in a public chat
// that chat wins; otherwise the participant's memberships decide, and
// they must name exactly one candidate.
type ResolvePublicChatQuery struct {
	userID       kernel.UserID
	directChatID kernel.ChatID

	guard kernel.ConstructorGuard
}

// NewResolvePublicChatQuery validates the inputs and builds the query.
// directChatID is zero when the interaction came from a private chat.
func NewResolvePublicChatQuery(userID kernel.UserID, directChatID kernel.ChatID) (ResolvePublicChatQuery, error) {
	if userID == 0 {
		return ResolvePublicChatQuery{}, errs.NewValueIsRequiredError("userId")
	}
	if directChatID != 0 && directChatID.IsPrivate() {
		return ResolvePublicChatQuery{}, errs.NewValueIsInvalidError("directChatId")
	}

	return ResolvePublicChatQuery{
		userID:       userID,
		directChatID: directChatID,
		guard:        kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolvePublicChatQuery) Validate() error {
	return q.guard.Validate(ErrResolvePublicChatQueryIsNotConstructed)
}

// UserID returns the participant the venue is resolved for.
func (q ResolvePublicChatQuery) UserID() kernel.UserID {
	return q.userID
}

// DirectChatID returns the public chat the interaction came from, zero
// when it came from a private chat.
func (q ResolvePublicChatQuery) DirectChatID() kernel.ChatID {
	return q.directChatID
}
