package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod records how the customer chose to pay. Settlement with a
// gateway is out of scope; the method is captured for the record only.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCard           PaymentMethod = "CARD"
	PaymentMethodUPI            PaymentMethod = "UPI"
	PaymentMethodWallet         PaymentMethod = "WALLET"
)

// Validate checks that the payment method is one of the known values.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

// String returns the payment method name.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus records the settlement state of the order's payment.
// Every order starts as PaymentPending.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Validate checks that the payment status is one of the known values.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
}

// String returns the payment status name.
func (s PaymentStatus) String() string {
	return string(s)
}
