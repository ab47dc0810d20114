package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The forward path is:
//
//	PENDING -> CONFIRMED -> PREPARING -> READY_FOR_PICKUP
//	        -> PICKED_UP -> ON_THE_WAY -> DELIVERED
//
// with CANCELLED reachable from any non-terminal state. DELIVERED and
// CANCELLED are terminal.
//
// The machine is intentionally permissive about skipping intermediate states
// (a restaurant may move PENDING straight to DELIVERED in one call, matching
// the documented product behavior). It does reject what the data model
// forbids outright: transitions out of a terminal state and backward moves.
type Status string

const (
	// StatusPending is the initial state of every placed order.
	StatusPending Status = "PENDING"

	// StatusConfirmed means the restaurant accepted the order.
	StatusConfirmed Status = "CONFIRMED"

	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing Status = "PREPARING"

	// StatusReadyForPickup means the order awaits a delivery partner.
	StatusReadyForPickup Status = "READY_FOR_PICKUP"

	// StatusPickedUp means the delivery partner collected the order.
	StatusPickedUp Status = "PICKED_UP"

	// StatusOnTheWay means the order is in transit to the customer.
	StatusOnTheWay Status = "ON_THE_WAY"

	// StatusDelivered is the successful terminal state.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled is the terminal state for rejected or aborted orders.
	StatusCancelled Status = "CANCELLED"
)

// statusRank orders the forward path. CANCELLED sits outside the ranking;
// it is reachable from any non-terminal state.
var statusRank = map[Status]int{
	StatusPending:        1,
	StatusConfirmed:      2,
	StatusPreparing:      3,
	StatusReadyForPickup: 4,
	StatusPickedUp:       5,
	StatusOnTheWay:       6,
	StatusDelivered:      7,
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if s == StatusCancelled {
		return nil
	}
	if _, ok := statusRank[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsDeliveryPhase reports whether the status belongs to the delivery leg of
// the lifecycle. These are the transitions an assigned delivery partner may
// perform.
func (s Status) IsDeliveryPhase() bool {
	return s == StatusPickedUp || s == StatusOnTheWay || s == StatusDelivered
}

// CanTransitionTo checks whether the order may move from s to next.
//
// Rules:
//   - next must be a known status
//   - nothing leaves a terminal state
//   - CANCELLED is reachable from any non-terminal state
//   - forward moves may skip intermediate states
//   - backward moves and no-op moves are conflicts
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewConflictError("order status", string(s), string(next))
	}

	if next == StatusCancelled {
		return nil
	}

	if statusRank[next] <= statusRank[s] {
		return errs.NewConflictError("order status", string(s), string(next))
	}

	return nil
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}
