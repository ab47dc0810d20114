package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderNumberPattern is the fixed shape of every order number: the "ORD-"
// prefix followed by exactly 8 uppercase alphanumerics.
var orderNumberPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{8}$`)

// OrderNumber is the human-readable, globally unique identifier printed on
// receipts and used by support. It is generated once at order placement and
// never changes.
//
// The value is derived from the first 8 hex characters of a random UUID,
// uppercased, which keeps collisions vanishingly unlikely while staying
// readable. Uniqueness is additionally enforced by the persistence layer.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber produces a fresh ORD-XXXXXXXX order number.
func GenerateOrderNumber() OrderNumber {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return OrderNumber{value: "ORD-" + strings.ToUpper(raw[:8])}
}

// OrderNumberFromString reconstructs an OrderNumber from persistence,
// validating the fixed pattern.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match ORD-XXXXXXXX", s))
	}
	return OrderNumber{value: s}, nil
}

// Validate ensures the order number was created through a factory function.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	return nil
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// String returns the order number, e.g. "ORD-1A2B3C4D".
func (n OrderNumber) String() string {
	return n.value
}
