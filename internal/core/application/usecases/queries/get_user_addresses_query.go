package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetUserAddressesQueryIsNotConstructed = errors.New(
	"GetUserAddressesQuery must be created via NewGetUserAddressesQuery constructor",
)

// GetUserAddressesQuery retrieves the acting user's saved addresses, default
// first.
type GetUserAddressesQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetUserAddressesQuery creates a query for the actor's addresses.
func NewGetUserAddressesQuery(actor kernel.Actor) (GetUserAddressesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUserAddressesQuery{}, err
	}

	return GetUserAddressesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserAddressesQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetUserAddressesQuery) Actor() kernel.Actor {
	return q.actor
}

// AddressResponse is one saved address in the read model.
type AddressResponse struct {
	ID        int64
	Label     string
	Address   string
	Landmark  string
	City      string
	State     string
	Pincode   string
	Latitude  *float64
	Longitude *float64
	IsDefault bool
	CreatedAt time.Time
}
