// Package order contains the marketplace's aggregate root and its
// authorization model.
//
// An order's lifecycle stage (Status) is derived from timestamp evidence
// rather than stored. What an actor may do to an order is the
// intersection of two closed tables: the role whitelist
// (Role.AllowedActions) and the per-status catalog
// (Order.AvailableActions). Order.PerformAction re-derives that
// intersection on every mutation.
//
// The package also owns the only wire format of the core: the action
// token, a "oa <kind-id> <order-id>" string that round-trips a requested
// transition through an opaque callback channel.
package order
