package ports

import (
	"context"
	"errors"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
)

var (
	// ErrNotInAnyChat is returned when venue resolution finds the
	// participant in no public chat at all.
	ErrNotInAnyChat = errors.New("participant is not a member of any public chat")

	// ErrMultipleChats is returned when venue resolution finds the
	// participant in more than one public chat. Multi-chat membership is
	// an explicitly unsupported case, never silently resolved.
	ErrMultipleChats = errors.New("participant is a member of multiple public chats")
)

// StoreStats is a point-in-time summary of the store's contents, for
// operational reporting.
type StoreStats struct {
	// MaxOrderID is the highest order id ever assigned.
	MaxOrderID kernel.OrderID
	ChatCount  int
	UserCount  int
	OrderCount int
}

// Store owns the authoritative chat/order/user graph and is the system's
// concurrency boundary: every method executes atomically with respect to
// all the others, and no two concurrent PerformAction calls against the
// same order can both win.
//
// Orders are value-copied across the boundary in both directions;
// callers never share a live reference with the store.
type Store interface {
	// AddOrder assigns a fresh id from the store-wide counter, inserts
	// the order into the chat's collection and returns the id. The
	// caller's draft is not mutated. Fails with an ObjectNotFoundError
	// when the chat is unknown.
	AddOrder(ctx context.Context, chatID kernel.ChatID, draft *order.Order) (kernel.OrderID, error)

	// OrdersByStatus returns copies of the chat's orders whose derived
	// status matches.
	OrdersByStatus(ctx context.Context, chatID kernel.ChatID, status order.Status) ([]*order.Order, error)

	// OrdersSubmittedBy returns copies of the chat's orders owned by the
	// participant.
	OrdersSubmittedBy(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error)

	// ActiveAssignmentsTo returns copies of the chat's orders the
	// participant currently holds (Assigned or MarkedAsDelivered).
	ActiveAssignmentsTo(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error)

	// PerformAction is the single read-modify-write entry point. It
	// locates the order, authorizes the action against its current
	// state, applies it and returns the pre-mutation status together
	// with the updated order, or nil for a deletion.
	//
	// Delete is handled structurally: the order is removed from the
	// chat's collection and its posting index is purged, after the
	// permission check. order.ErrNotPermitted reports authorization
	// failures; the order is left untouched.
	PerformAction(ctx context.Context, actor participant.Participant, chatID kernel.ChatID, act order.Action) (order.Status, *order.Order, error)

	// GetUser returns the participant's record, nil when never seen.
	GetUser(ctx context.Context, uid kernel.UserID) (*participant.Participant, error)

	// UpdateUser upserts the participant record whole. Last write wins.
	UpdateUser(ctx context.Context, p participant.Participant) error

	// UpdateChat upserts a public chat's metadata. The first sighting
	// registers the chat with an empty member set; later sightings only
	// refresh the metadata.
	UpdateChat(ctx context.Context, c chat.PublicChat) error

	// AddMembers records venue membership for the given participants.
	// Adding existing members is a no-op.
	AddMembers(ctx context.Context, chatID kernel.ChatID, uids []kernel.UserID) error

	// RemoveMember drops one membership. Removing an absent member is a
	// no-op.
	RemoveMember(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) error

	// ChatsOf returns (id, title) refs of every public chat the
	// participant is a member of. Venue resolution consumes this.
	ChatsOf(ctx context.Context, uid kernel.UserID) ([]chat.Ref, error)

	// RecordPosting registers the location of an outward message that
	// displayed the order, so it can later be edited or retracted.
	RecordPosting(ctx context.Context, orderID kernel.OrderID, p chat.Posting) error

	// Postings returns every recorded location for the order.
	Postings(ctx context.Context, orderID kernel.OrderID) ([]chat.Posting, error)

	// Stats reports a point-in-time content summary.
	Stats(ctx context.Context) (StoreStats, error)
}
