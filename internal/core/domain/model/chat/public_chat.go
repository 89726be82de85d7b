package chat

import (
	"slices"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrPublicChatIsNotConstructed is returned when a PublicChat was not
// created through NewPublicChat.
var ErrPublicChatIsNotConstructed = errs.NewValueIsRequiredError(
	"PublicChat must be created via NewPublicChat")

// PublicChat is a shared venue in which orders are published and
// claimed. It tracks the member set used to resolve which venue a
// private interaction belongs to; the orders themselves live in the
// store, keyed by the chat id.
//
// An order belongs to exactly one public chat for its whole lifetime.
type PublicChat struct {
	id      kernel.ChatID
	title   string
	members []kernel.UserID

	guard kernel.ConstructorGuard
}

// NewPublicChat creates a venue record. Private dialog ids are rejected:
// only group chats can host orders.
func NewPublicChat(id kernel.ChatID, title string) (PublicChat, error) {
	if id == 0 {
		return PublicChat{}, errs.NewValueIsRequiredError("id")
	}
	if id.IsPrivate() {
		return PublicChat{}, errs.NewValueIsInvalidError("id: private chats cannot host orders")
	}

	return PublicChat{
		id:    id,
		title: title,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record came from NewPublicChat.
func (c *PublicChat) Validate() error {
	if c == nil {
		return ErrPublicChatIsNotConstructed
	}
	return c.guard.Validate(ErrPublicChatIsNotConstructed)
}

// ID returns the chat's transport identifier.
func (c *PublicChat) ID() kernel.ChatID {
	return c.id
}

// Title returns the display name, possibly empty.
func (c *PublicChat) Title() string {
	return c.title
}

// Rename updates the display name on metadata upserts.
func (c *PublicChat) Rename(title string) {
	c.title = title
}

// AddMember records a member sighting. Adding an existing member is a
// no-op; insertion order is preserved.
func (c *PublicChat) AddMember(uid kernel.UserID) {
	if !c.HasMember(uid) {
		c.members = append(c.members, uid)
	}
}

// RemoveMember drops a member. Removing an absent member is a no-op.
func (c *PublicChat) RemoveMember(uid kernel.UserID) {
	c.members = slices.DeleteFunc(c.members, func(id kernel.UserID) bool {
		return id == uid
	})
}

// HasMember reports whether the participant is a known member.
func (c *PublicChat) HasMember(uid kernel.UserID) bool {
	return slices.Contains(c.members, uid)
}

// Members returns a copy of the member ids in insertion order.
func (c *PublicChat) Members() []kernel.UserID {
	return slices.Clone(c.members)
}

// Clone returns an independent copy, so store callers never share the
// resident member slice.
func (c *PublicChat) Clone() PublicChat {
	dup := *c
	dup.members = slices.Clone(c.members)
	return dup
}
