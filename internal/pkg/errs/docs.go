// Package errs provides standardized error types for the marketplace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the full error taxonomy of the order core:
//   - ObjectNotFoundError: a referenced restaurant/address/menu-item/order does not exist
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError: validation failures
//   - ForbiddenError: the actor lacks the role or ownership relation for the operation
//   - ConflictError: a state transition the current state does not permit
//   - ItemUnavailableError: a menu item exists but is not orderable right now
//   - BelowMinimumOrderError: a cart subtotal under the restaurant threshold
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Errors are never swallowed: every core operation surfaces its error to the
// boundary, which translates the sentinel kind into a client-facing status.
package errs
