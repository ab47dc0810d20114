// Package address provides the delivery-address entity and the data behind
// the single-default invariant: at any time a user owns at least one address,
// exactly one of them carries the default flag. The invariant itself is
// enforced transactionally by the address use cases.
package address

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Details carries the mutable attributes of an address. Used both at
// creation and on update.
type Details struct {
	Label     string
	Address   string
	Landmark  string
	City      string
	State     string
	Pincode   string
	Latitude  *float64
	Longitude *float64
}

func (d Details) validate() error {
	return errors.Join(
		requireText("label", d.Label),
		requireText("address", d.Address),
		requireText("city", d.City),
		requireText("state", d.State),
		requireText("pincode", d.Pincode),
	)
}

// Address is a customer's saved delivery destination. It is owned exclusively
// by its user; orders reference it as a point-in-time destination but never
// own it.
type Address struct {
	id        int64
	userID    int64
	details   Details
	isDefault bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewAddress creates a validated address for the given user.
func NewAddress(userID int64, details Details, isDefault bool) (*Address, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a valid user id", userID))
	}
	if err := details.validate(); err != nil {
		return nil, err
	}

	return &Address{
		userID:    userID,
		details:   details,
		isDefault: isDefault,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAddress reconstructs an address from persistence.
func RestoreAddress(id, userID int64, details Details, isDefault bool, createdAt time.Time) (*Address, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("addressId",
			fmt.Errorf("%d is not a valid id", id))
	}
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a valid user id", userID))
	}

	return &Address{
		id:        id,
		userID:    userID,
		details:   details,
		isDefault: isDefault,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created via NewAddress or RestoreAddress.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// UpdateDetails replaces the mutable attributes after validating them.
func (a *Address) UpdateDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	a.details = details
	return nil
}

// MarkDefault flags this address as the user's default. Callers clear the
// user's other defaults in the same transaction.
func (a *Address) MarkDefault() {
	a.isDefault = true
}

// ClearDefault removes the default flag.
func (a *Address) ClearDefault() {
	a.isDefault = false
}

// IsOwnedBy reports whether the given user owns this address.
func (a *Address) IsOwnedBy(userID int64) bool {
	return a.userID == userID
}

// ID returns the numeric identifier, zero until persisted.
func (a *Address) ID() int64 { return a.id }

// SetID records the identifier generated by the persistence layer.
func (a *Address) SetID(id int64) { a.id = id }

// UserID returns the owning user's id.
func (a *Address) UserID() int64 { return a.userID }

// Details returns the address attributes.
func (a *Address) Details() Details { return a.details }

// IsDefault reports whether this is the user's default address.
func (a *Address) IsDefault() bool { return a.isDefault }

// CreatedAt returns the creation timestamp.
func (a *Address) CreatedAt() time.Time { return a.createdAt }

func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
