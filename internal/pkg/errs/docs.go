// Package errs provides the standardized error types used across the
// service.
//
// Each error scenario follows the same pattern:
//   - a sentinel variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the offending parameter and an optional cause
//   - paired constructors, with and without a cause
//   - Error() for a single-line formatted message
//   - Unwrap() returning the sentinel
//
// Keeping the taxonomy in one place lets callers classify failures
// (missing value, invalid value, object not found, stale version) without
// string matching, and keeps user-facing messages consistent.
package errs
