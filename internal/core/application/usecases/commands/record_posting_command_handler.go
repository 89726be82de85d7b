package commands

import (
	"context"

	"dilivry/internal/core/ports"
)

// RecordPostingCommandHandler appends posting locations to an order's
// posting set. Duplicate postings collapse into one.
type RecordPostingCommandHandler struct {
	store ports.Store
}

// NewRecordPostingCommandHandler creates a handler for posting records.
func NewRecordPostingCommandHandler(store ports.Store) RecordPostingCommandHandler {
	return RecordPostingCommandHandler{store: store}
}

// Handle records the posting.
func (h *RecordPostingCommandHandler) Handle(ctx context.Context, cmd RecordPostingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.RecordPosting(ctx, cmd.OrderID(), cmd.Posting())
}
