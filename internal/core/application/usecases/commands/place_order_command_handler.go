package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// Placement re-resolves every menu item from the catalog so prices and
// availability reflect the moment of ordering, prices the cart through the
// pricing calculator, and persists the order atomically with its items and
// initial history entry. The delivery address is read inside the same
// transaction to verify the customer owns it.
type PlaceOrderCommandHandler struct {
	uowFactory OrderAddressUoWFactory
	catalog    ports.CatalogProvider
	pricer     services.PricingCalculator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderAddressUoWFactory,
	catalog ports.CatalogProvider,
	pricer services.PricingCalculator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricer:     pricer,
	}
}

// Handle processes the placement command and returns the persisted order.
//
// Only customers place orders. Any unavailable item, a subtotal below the
// restaurant's minimum, or an address the customer does not own fails the
// whole placement; nothing is persisted in that case.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsCustomer() {
		return nil, errs.NewForbiddenError(cmd.Actor().ID(), "place an order")
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	cartLines, items, err := h.resolveCart(ctx, cmd)
	if err != nil {
		return nil, err
	}

	totals, err := h.pricer.Price(cartLines, services.FeeSchedule{
		DeliveryFee:        restaurant.DeliveryFee,
		MinimumOrderAmount: restaurant.MinimumOrderAmount,
	}, kernel.ZeroMoney())
	if err != nil {
		return nil, err
	}

	eta := time.Now().UTC().Add(time.Duration(restaurant.DeliveryTimeMinutes) * time.Minute)
	newOrder, err := order.NewOrder(
		kernel.GenerateOrderNumber(),
		cmd.Actor().ID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddressID(),
		items,
		totals,
		cmd.PaymentMethod(),
		cmd.SpecialInstructions(),
		&eta,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryAddress, err := uow.AddressRepository().Get(ctx, cmd.DeliveryAddressID())
	if err != nil {
		return nil, err
	}

	if !deliveryAddress.IsOwnedBy(cmd.Actor().ID()) {
		return nil, errs.NewForbiddenError(cmd.Actor().ID(), "deliver to this address")
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveCart re-reads every requested menu item from the catalog and builds
// both the pricing input and the frozen order lines.
func (h *PlaceOrderCommandHandler) resolveCart(
	ctx context.Context, cmd PlaceOrderCommand,
) ([]services.CartLine, []order.Item, error) {
	cartLines := make([]services.CartLine, 0, len(cmd.Lines()))
	items := make([]order.Item, 0, len(cmd.Lines()))

	for _, line := range cmd.Lines() {
		menuItem, err := h.catalog.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, nil, err
		}

		if menuItem.RestaurantID != cmd.RestaurantID() {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("menu item %d belongs to another restaurant", menuItem.ID))
		}

		cartLines = append(cartLines, services.CartLine{
			MenuItemID:   menuItem.ID,
			MenuItemName: menuItem.Name,
			UnitPrice:    menuItem.Price,
			IsAvailable:  menuItem.IsAvailable,
			Quantity:     line.Quantity,
		})

		item, err := order.NewItem(menuItem.ID, menuItem.Name, line.Quantity, menuItem.Price, line.Instructions)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	return cartLines, items, nil
}
