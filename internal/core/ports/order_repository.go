// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the external catalog
// and identity collaborators. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored with its line items and history entries; the
// three row sets share the aggregate's transactional lifetime.
type OrderRepository interface {
	// Add persists a new order together with its items and initial history
	// entry, and records the generated id on the aggregate. All rows land in
	// the same transaction: either the full aggregate exists or none of it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (status, timestamps,
	// partner assignment) and appends any history entries not yet stored.
	// Items are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id with its items and full history.
	// Returns ObjectNotFound if no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetFirstReadyForPickupUnassigned retrieves the oldest order waiting
	// for a delivery partner: READY_FOR_PICKUP with no partner assigned.
	// Returns ObjectNotFound when no order is waiting.
	GetFirstReadyForPickupUnassigned(ctx context.Context) (*order.Order, error)
}
