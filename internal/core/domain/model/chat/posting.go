package chat

import "dilivry/internal/core/domain/model/kernel"

// Ref is a lightweight (id, title) reference to a public chat, returned
// by membership scans.
type Ref struct {
	ID    kernel.ChatID
	Title string
}

// Posting locates one outward notification message that displayed an
// order, so the transport layer can later edit or retract it.
type Posting struct {
	ChatID    kernel.ChatID
	MessageID kernel.MessageID
}
