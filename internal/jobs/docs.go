// Package jobs contains the scheduled background work: periodic store
// statistics reporting for operational visibility.
package jobs
