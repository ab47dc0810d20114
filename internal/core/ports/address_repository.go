package ports

import (
	"context"

	"marketplace/internal/core/domain/model/address"
)

// AddressRepository defines the persistence contract for addresses. The
// single-default invariant is maintained by the address use cases, which run
// ClearDefaults and the subsequent default write inside one transaction.
type AddressRepository interface {
	// Add persists a new address and records the generated id.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address by id. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id int64) (*address.Address, error)

	// Delete removes an address by id.
	Delete(ctx context.Context, id int64) error

	// ClearDefaults removes the default flag from every address the user
	// owns. Called before marking a new default so at most one survives.
	ClearDefaults(ctx context.Context, userID int64) error

	// GetNewestForUser retrieves the user's most recently created address.
	// Returns ObjectNotFound when the user owns none. Used to promote a
	// replacement default after the current default is deleted.
	GetNewestForUser(ctx context.Context, userID int64) (*address.Address, error)

	// CountForUser returns how many addresses the user owns.
	CountForUser(ctx context.Context, userID int64) (int64, error)
}
