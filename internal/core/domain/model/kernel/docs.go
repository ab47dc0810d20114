// Package kernel provides core domain primitives used throughout the
// marketplace domain model.
//
// The package includes:
//   - Money: a fixed-point monetary amount stored in paise (1/100 rupee)
//   - OrderNumber: the human-readable ORD-XXXXXXXX order identifier
//   - Actor: the authenticated identity and role performing an operation
//
// All types are immutable value objects constructed through validating
// factory functions. Monetary arithmetic never leaves the integer domain,
// so totals are exact at two-decimal precision and tax rounding is
// deterministic (half-up).
package kernel
