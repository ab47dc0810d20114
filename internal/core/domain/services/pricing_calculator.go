package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CartLine is one validated cart entry: a menu item as the catalog resolved
// it at placement time, with the requested quantity. The unit price here is
// the price that gets frozen onto the order.
type CartLine struct {
	MenuItemID   int64
	MenuItemName string
	UnitPrice    kernel.Money
	IsAvailable  bool
	Quantity     int
}

// FeeSchedule is the restaurant's pricing configuration.
type FeeSchedule struct {
	DeliveryFee        kernel.Money
	MinimumOrderAmount kernel.Money
}

// PricingCalculator turns a validated cart into a monetary breakdown. It is a
// pure computation over its inputs: no I/O, no side effects. The tax rate is
// injected (basis points) so regional rates never require touching the
// engine.
type PricingCalculator struct {
	taxRateBps int64
}

// NewPricingCalculator creates a calculator with the given tax rate in basis
// points (1800 = 18%).
func NewPricingCalculator(taxRateBps int64) (PricingCalculator, error) {
	if taxRateBps < 0 || taxRateBps > 10000 {
		return PricingCalculator{}, errs.NewValueIsOutOfRangeError("taxRateBps", taxRateBps, 0, 10000)
	}
	return PricingCalculator{taxRateBps: taxRateBps}, nil
}

// Price computes the order breakdown for the cart against the restaurant's
// fee schedule.
//
// Rules:
//   - any unavailable line fails with ItemUnavailable
//   - subtotal is the sum of frozen unit price times quantity
//   - the minimum-order check runs against the subtotal, matching what the
//     customer sees before fees and tax
//   - tax = subtotal x rate, rounded half-up
//   - finalTotal = subtotal + deliveryFee + tax - discount, and must not be
//     negative
func (c PricingCalculator) Price(lines []CartLine, fees FeeSchedule, discount kernel.Money) (order.Totals, error) {
	if len(lines) == 0 {
		return order.Totals{}, errs.NewValueIsRequiredError("items")
	}

	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		if !line.IsAvailable {
			return order.Totals{}, errs.NewItemUnavailableError(line.MenuItemName)
		}

		lineTotal, err := line.UnitPrice.MulQuantity(line.Quantity)
		if err != nil {
			return order.Totals{}, err
		}
		subtotal = subtotal.Add(lineTotal)
	}

	if subtotal.IsLessThan(fees.MinimumOrderAmount) {
		return order.Totals{}, errs.NewBelowMinimumOrderError(subtotal.String(), fees.MinimumOrderAmount.String())
	}

	tax := subtotal.PercentBps(c.taxRateBps)

	finalTotal, err := subtotal.Add(fees.DeliveryFee).Add(tax).Sub(discount)
	if err != nil {
		return order.Totals{}, err
	}

	return order.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fees.DeliveryFee,
		Tax:         tax,
		Discount:    discount,
		FinalTotal:  finalTotal,
	}, nil
}
