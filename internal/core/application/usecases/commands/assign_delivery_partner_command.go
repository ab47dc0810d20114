package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryPartnerCommandIsNotConstructed = errors.New(
	"AssignDeliveryPartnerCommand must be created via NewAssignDeliveryPartnerCommand constructor",
)

// AssignDeliveryPartnerCommand represents one assignment attempt: pair the
// oldest order waiting for pickup with an available delivery partner. It
// carries no parameters; the background job issues it on a schedule.
type AssignDeliveryPartnerCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDeliveryPartnerCommand creates a command to run one assignment
// attempt.
func NewAssignDeliveryPartnerCommand() AssignDeliveryPartnerCommand {
	return AssignDeliveryPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPartnerCommandIsNotConstructed)
}
