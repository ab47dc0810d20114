package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand represents a request to save a new delivery address for
// the acting user.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	details   address.Details
	isDefault bool

	guard guard.ConstructorGuard
}

// NewAddAddressCommand creates a command to save a new address. The details
// are validated by the address entity at handling time; the command only
// validates the acting identity.
func NewAddAddressCommand(actor kernel.Actor, details address.Details, isDefault bool) (AddAddressCommand, error) {
	if err := actor.Validate(); err != nil {
		return AddAddressCommand{}, err
	}

	return AddAddressCommand{
		actor:     actor,
		details:   details,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c AddAddressCommand) Actor() kernel.Actor {
	return c.actor
}

// Details returns the submitted address attributes.
func (c AddAddressCommand) Details() address.Details {
	return c.details
}

// IsDefault reports whether the user asked to make this address the default.
func (c AddAddressCommand) IsDefault() bool {
	return c.isDefault
}
