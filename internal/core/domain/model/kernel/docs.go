// Package kernel holds the shared identifier types and small building
// blocks used by every domain model: order, user, chat and message ids,
// and the constructor guard for value objects.
//
// All ids are opaque numeric handles with a total ordering, which makes
// them usable as map keys and sortable in listings.
package kernel
