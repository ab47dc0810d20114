package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Money is a fixed-point monetary amount stored as an integer count of paise
// (two decimal places). It is immutable: arithmetic methods return new values.
//
// Money is never negative. Subtraction that would cross zero is an error,
// which is how the engine enforces "final total must be >= 0".
//
// Example:
//
//	subtotal, _ := kernel.NewMoneyFromPaise(50000) // 500.00
//	tax := subtotal.PercentBps(1800)               // 90.00
type Money struct {
	paise int64
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// NewMoneyFromPaise creates a Money value from an integer number of paise.
// Negative amounts are rejected.
func NewMoneyFromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d paise is negative", paise))
	}
	return Money{paise: paise}, nil
}

// Paise returns the raw amount in paise.
func (m Money) Paise() int64 {
	return m.paise
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.paise == 0
}

// IsLessThan reports whether m is strictly smaller than other.
func (m Money) IsLessThan(other Money) bool {
	return m.paise < other.paise
}

// IsEqual reports whether both amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// Sub returns m minus other. An amount below zero is an error.
func (m Money) Sub(other Money) (Money, error) {
	if other.paise > m.paise {
		return Money{}, errs.NewValueIsOutOfRangeError("money", m.paise-other.paise, 0, m.paise)
	}
	return Money{paise: m.paise - other.paise}, nil
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity < 1 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Money{paise: m.paise * int64(quantity)}, nil
}

// PercentBps returns the given fraction of the amount expressed in basis
// points (1 bps = 0.01%), rounded half-up to the nearest paisa.
func (m Money) PercentBps(bps int64) Money {
	return Money{paise: (m.paise*bps + 5000) / 10000}
}

// String renders the amount with two decimal places, e.g. "620.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.paise/100, m.paise%100)
}
