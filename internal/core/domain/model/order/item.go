package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Item is one line of an order: a menu item at a quantity, priced with the
// unit price frozen at placement time. Later catalog price changes never
// touch historical orders.
//
// Items are immutable. They are created alongside the order and never
// updated or deleted independently.
type Item struct {
	id           int64
	menuItemID   int64
	menuItemName string
	quantity     int
	unitPrice    kernel.Money
	lineTotal    kernel.Money
	instructions string
}

// NewItem creates an order line, computing the line total from the frozen
// unit price and the requested quantity (which must be at least 1).
func NewItem(menuItemID int64, menuItemName string, quantity int, unitPrice kernel.Money, instructions string) (Item, error) {
	if menuItemID <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("menuItemId",
			fmt.Errorf("%d is not a valid menu item id", menuItemID))
	}
	if menuItemName == "" {
		return Item{}, errs.NewValueIsRequiredError("menuItemName")
	}

	lineTotal, err := unitPrice.MulQuantity(quantity)
	if err != nil {
		return Item{}, err
	}

	return Item{
		menuItemID:   menuItemID,
		menuItemName: menuItemName,
		quantity:     quantity,
		unitPrice:    unitPrice,
		lineTotal:    lineTotal,
		instructions: instructions,
	}, nil
}

// RestoreItem reconstructs an order line from persistence without
// recomputing the frozen amounts.
func RestoreItem(id, menuItemID int64, menuItemName string, quantity int,
	unitPrice, lineTotal kernel.Money, instructions string,
) (Item, error) {
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("persisted quantity is below 1"))
	}

	return Item{
		id:           id,
		menuItemID:   menuItemID,
		menuItemName: menuItemName,
		quantity:     quantity,
		unitPrice:    unitPrice,
		lineTotal:    lineTotal,
		instructions: instructions,
	}, nil
}

// ID returns the persistence identifier, zero until the item is stored.
func (i Item) ID() int64 {
	return i.id
}

// MenuItemID returns the referenced menu item's id.
func (i Item) MenuItemID() int64 {
	return i.menuItemID
}

// MenuItemName returns the menu item name snapshotted at placement.
func (i Item) MenuItemName() string {
	return i.menuItemName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price frozen at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// Instructions returns the optional per-item note.
func (i Item) Instructions() string {
	return i.instructions
}
