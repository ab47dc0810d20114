package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine is one requested cart entry as the customer submitted it: a menu
// item reference and a quantity. Prices are never part of the request; the
// handler resolves them from the catalog at placement time.
type OrderLine struct {
	MenuItemID   int64
	Quantity     int
	Instructions string
}

// PlaceOrderCommand represents a customer's request to place an order: a cart
// against one restaurant, delivered to one of the customer's saved addresses.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor               kernel.Actor
	restaurantID        int64
	deliveryAddressID   int64
	lines               []OrderLine
	paymentMethod       order.PaymentMethod
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates the
// acting identity, the referenced ids, the payment method, and that the cart
// holds at least one line with a positive quantity.
func NewPlaceOrderCommand(
	actor kernel.Actor,
	restaurantID, deliveryAddressID int64,
	lines []OrderLine,
	paymentMethod order.PaymentMethod,
	specialInstructions string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setActor(actor),
		placeCommand.setRestaurantID(restaurantID),
		placeCommand.setDeliveryAddressID(deliveryAddressID),
		placeCommand.setLines(lines),
		placeCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c PlaceOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// RestaurantID returns the restaurant the cart was built against.
func (c PlaceOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// DeliveryAddressID returns the requested delivery address.
func (c PlaceOrderCommand) DeliveryAddressID() int64 {
	return c.deliveryAddressID
}

// Lines returns the requested cart entries.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// SpecialInstructions returns the optional order-level note.
func (c PlaceOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *PlaceOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a valid restaurant id", restaurantID))
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddressID(deliveryAddressID int64) error {
	if deliveryAddressID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryAddressId",
			fmt.Errorf("%d is not a valid address id", deliveryAddressID))
	}

	c.deliveryAddressID = deliveryAddressID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, line := range lines {
		if line.MenuItemID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("%d is not a valid menu item id", line.MenuItemID))
		}
		if line.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, nil)
		}
	}

	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
