package kernel

import "strconv"

// OrderID identifies an order. Ids are assigned by the store from a
// single monotonically increasing counter and are never reused.
// The zero value means "not persisted yet"; persisted orders always
// carry a positive id.
type OrderID uint64

// String returns the decimal representation used in action tokens and
// storage keys.
func (id OrderID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// UserID identifies a participant across all chats.
type UserID uint64

func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ChatID identifies a chat on the transport. Group chats carry negative
// ids, private dialogs positive ones equal to the peer's UserID.
type ChatID int64

func (id ChatID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsPrivate reports whether the id addresses a one-to-one dialog rather
// than a group chat.
func (id ChatID) IsPrivate() bool {
	return id > 0
}

// PrivateChatOf derives the private dialog id for a participant.
// The transport guarantees this mapping, so the relation is computed
// rather than stored.
func PrivateChatOf(uid UserID) ChatID {
	return ChatID(uid)
}

// MessageID identifies a single message within a chat.
type MessageID int64

func (id MessageID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
