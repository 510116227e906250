// Package diagnostic provides structured errors and warnings reported
// while checking class models supplied by a provider.
//
// Key capabilities:
//   - Errors that make a model unusable (empty names, missing descriptors)
//   - Warnings for suspicious but usable shapes (duplicate members)
//   - A combined error value for callers that only need pass/fail
package diagnostic
