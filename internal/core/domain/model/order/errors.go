package order

import "errors"

// ErrNotPermitted is returned when an actor requests an action outside
// the intersection of their role's whitelist and the order's available
// set. It is an expected outcome (stale UI, raced claim), not a system
// fault, and must leave the order untouched.
var ErrNotPermitted = errors.New("action is not permitted")
