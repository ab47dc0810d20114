package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a request to remove one of the acting
// user's saved addresses.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	addressID int64

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates a command to delete an address.
func NewDeleteAddressCommand(actor kernel.Actor, addressID int64) (DeleteAddressCommand, error) {
	if err := errors.Join(actor.Validate(), validateAddressID(addressID)); err != nil {
		return DeleteAddressCommand{}, err
	}

	return DeleteAddressCommand{
		actor:     actor,
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c DeleteAddressCommand) Actor() kernel.Actor {
	return c.actor
}

// AddressID returns the address to delete.
func (c DeleteAddressCommand) AddressID() int64 {
	return c.addressID
}
