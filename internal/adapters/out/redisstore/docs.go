// Package redisstore implements ports.Store on Redis. Records live in a
// flat key schema under a configurable prefix; order transitions use
// WATCH-guarded transactions so concurrent writers never lose updates.
package redisstore
