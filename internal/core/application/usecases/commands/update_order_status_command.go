package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle state. The restaurant-facing operations (accept, reject, mark
// preparing, mark ready) and the delivery-phase updates are all expressed
// through this one command with a fixed target status and note.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	orderID    int64
	nextStatus order.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to
// nextStatus with an accompanying history note.
func NewUpdateOrderStatusCommand(
	actor kernel.Actor, orderID int64, nextStatus order.Status, notes string,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(actor),
		statusCommand.setOrderID(orderID),
		statusCommand.setNextStatus(nextStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// NewAcceptOrderCommand creates a command for a restaurant accepting a
// pending order.
func NewAcceptOrderCommand(actor kernel.Actor, orderID int64) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(actor, orderID, order.StatusConfirmed, "Order accepted by restaurant")
}

// NewRejectOrderCommand creates a command for a restaurant rejecting an
// order. The reason is mandatory and lands in the status history.
func NewRejectOrderCommand(actor kernel.Actor, orderID int64, reason string) (UpdateOrderStatusCommand, error) {
	if reason == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("reason")
	}
	return NewUpdateOrderStatusCommand(actor, orderID, order.StatusCancelled, "Order rejected: "+reason)
}

// NewMarkPreparingCommand creates a command marking the order as in the
// kitchen.
func NewMarkPreparingCommand(actor kernel.Actor, orderID int64) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(actor, orderID, order.StatusPreparing, "Order is being prepared")
}

// NewMarkReadyForPickupCommand creates a command marking the order as
// waiting for a delivery partner.
func NewMarkReadyForPickupCommand(actor kernel.Actor, orderID int64) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(actor, orderID, order.StatusReadyForPickup, "Order ready for pickup")
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the target order's id.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// NextStatus returns the requested lifecycle state.
func (c UpdateOrderStatusCommand) NextStatus() order.Status {
	return c.nextStatus
}

// Notes returns the history note recorded with the transition.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
