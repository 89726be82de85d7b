package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
)

// ErrStoreStatsQueryIsNotConstructed is returned when a StoreStatsQuery
// was not created via NewStoreStatsQuery.
var ErrStoreStatsQueryIsNotConstructed = errors.New(
	"StoreStatsQuery must be created via NewStoreStatsQuery constructor",
)

// StoreStatsQuery asks for the store-wide counters. Parameterless.
type StoreStatsQuery struct {
	guard kernel.ConstructorGuard
}

// NewStoreStatsQuery creates a query for the store statistics.
func NewStoreStatsQuery() StoreStatsQuery {
	return StoreStatsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q StoreStatsQuery) Validate() error {
	return q.guard.Validate(ErrStoreStatsQueryIsNotConstructed)
}
