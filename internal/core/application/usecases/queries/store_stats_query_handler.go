package queries

import (
	"context"

	"dilivry/internal/core/ports"
)

// StoreStatsQueryHandler serves the store-wide counters.
type StoreStatsQueryHandler struct {
	store ports.Store
}

// NewStoreStatsQueryHandler creates a handler for stats lookups.
func NewStoreStatsQueryHandler(store ports.Store) StoreStatsQueryHandler {
	return StoreStatsQueryHandler{store: store}
}

// Handle reads the counters.
func (h StoreStatsQueryHandler) Handle(ctx context.Context, query StoreStatsQuery) (ports.StoreStats, error) {
	if err := query.Validate(); err != nil {
		return ports.StoreStats{}, err
	}

	return h.store.Stats(ctx)
}
