// Package errs provides standardized error types for the freight application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel,
//     so callers classify failures with errors.Is
//
// Besides the generic validation errors (ValueIsRequiredError,
// ValueIsInvalidError, ValueIsOutOfRangeError, ObjectNotFoundError), the
// package defines the lifecycle taxonomy used by the shipment and quote
// state machines:
//   - InvalidTransitionError: a state machine guard rejected the event
//   - UnauthorizedError: the caller lacks rights over the entity
//   - ConflictError: a concurrent write violated an invariant
//   - ExpiredError: the entity's validity window has elapsed
//   - UpstreamUnavailableError: a collaborator is unreachable (retryable)
//
// The boundary layers map these onto HTTP status codes and retry policy,
// which keeps classification out of individual handlers.
package errs
