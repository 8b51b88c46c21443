// Package errs provides the typed errors shared by every layer of the service.
//
// Each error type follows one pattern: a sentinel (ErrXxx), a struct carrying the
// details, New…/New…WithCause constructors and an Unwrap method returning the
// sentinel, so callers branch with errors.Is and inspect with errors.As.
//
// The types map onto the failure classes the HTTP layer and the portal client
// understand:
//   - ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange: validation, never retried
//   - ActionIsForbidden: the caller's role may not perform the action
//   - TransitionIsInvalid, VersionIsInvalid: the order is no longer in a state that
//     allows the request; refresh instead of reissuing it
//   - ObjectNotFound: lookup misses
package errs
