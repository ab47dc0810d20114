package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a request to replace the attributes of an
// existing address. A requested default also promotes the address, clearing
// the user's other defaults; a false flag leaves the current default alone.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	addressID int64
	details   address.Details
	isDefault bool

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to update an address.
func NewUpdateAddressCommand(
	actor kernel.Actor, addressID int64, details address.Details, isDefault bool,
) (UpdateAddressCommand, error) {
	if err := errors.Join(actor.Validate(), validateAddressID(addressID)); err != nil {
		return UpdateAddressCommand{}, err
	}

	return UpdateAddressCommand{
		actor:     actor,
		addressID: addressID,
		details:   details,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateAddressCommand) Actor() kernel.Actor {
	return c.actor
}

// AddressID returns the target address id.
func (c UpdateAddressCommand) AddressID() int64 {
	return c.addressID
}

// Details returns the replacement attributes.
func (c UpdateAddressCommand) Details() address.Details {
	return c.details
}

// IsDefault reports whether the update also promotes the address to default.
func (c UpdateAddressCommand) IsDefault() bool {
	return c.isDefault
}

func validateAddressID(addressID int64) error {
	if addressID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("addressId",
			fmt.Errorf("%d is not a valid address id", addressID))
	}
	return nil
}
