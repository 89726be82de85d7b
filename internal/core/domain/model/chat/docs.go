// Package chat models the public venues of the marketplace and the
// bookkeeping around them: membership sets and the locations of
// notification messages sent on an order's behalf.
package chat
