package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSetDefaultAddressCommandIsNotConstructed = errors.New(
	"SetDefaultAddressCommand must be created via NewSetDefaultAddressCommand constructor",
)

// SetDefaultAddressCommand represents a request to make one of the acting
// user's addresses the default delivery destination.
type SetDefaultAddressCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	addressID int64

	guard guard.ConstructorGuard
}

// NewSetDefaultAddressCommand creates a command to promote an address to
// default.
func NewSetDefaultAddressCommand(actor kernel.Actor, addressID int64) (SetDefaultAddressCommand, error) {
	if err := errors.Join(actor.Validate(), validateAddressID(addressID)); err != nil {
		return SetDefaultAddressCommand{}, err
	}

	return SetDefaultAddressCommand{
		actor:     actor,
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDefaultAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultAddressCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SetDefaultAddressCommand) Actor() kernel.Actor {
	return c.actor
}

// AddressID returns the address to promote.
func (c SetDefaultAddressCommand) AddressID() int64 {
	return c.addressID
}
