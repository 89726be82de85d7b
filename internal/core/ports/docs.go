// Package ports declares the contract between the marketplace core and
// its persistence backends. The Store interface is implemented twice:
// by the in-process mem backend and by the redis backend.
package ports
