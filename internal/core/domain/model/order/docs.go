// Package order provides the central aggregate of the marketplace: the
// customer order, its line items, its monetary breakdown, and its status
// lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning items and the status history
//   - Item: an immutable order line with the unit price frozen at placement
//   - HistoryEntry: one row of the append-only status audit trail
//   - Status: the lifecycle state machine
//   - PaymentMethod / PaymentStatus: recorded payment facts
//
// Key business rules:
//   - orders are created atomically with their items and the initial PENDING
//     history entry
//   - the monetary breakdown comes from the pricing calculator and satisfies
//     finalTotal = subtotal + deliveryFee + tax - discount
//   - status transitions may skip forward but never move backward, and
//     DELIVERED and CANCELLED are terminal
//   - every successful transition appends exactly one history entry tagged
//     with the acting role
package order
