// Package mem implements ports.Store with an in-process graph behind a
// single RWMutex. Simple and correct: every write is serialized
// store-wide, so each operation appears atomic to all observers.
package mem
