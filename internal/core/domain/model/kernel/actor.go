package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the authorization category of an authenticated user.
type Role string

const (
	// RoleCustomer places orders and manages their own addresses.
	RoleCustomer Role = "CUSTOMER"

	// RoleRestaurant owns one or more restaurants and drives order fulfilment.
	RoleRestaurant Role = "RESTAURANT"

	// RoleDeliveryPartner carries orders and reports the delivery phase.
	RoleDeliveryPartner Role = "DELIVERY_PARTNER"

	// RoleAdmin has read access to restaurant order listings.
	RoleAdmin Role = "ADMIN"
)

// Validate checks that the role is one of the known categories.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDeliveryPartner, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated identity performing a core operation. The
// boundary layer resolves it from its own authentication mechanism and passes
// it explicitly into every use case; the core never reads ambient request
// state.
//
// Actor carries only what authorization needs: the user id and the role.
// Ownership facts (who owns a restaurant, who is assigned to an order) come
// from the identity collaborator and the order aggregate itself.
type Actor struct {
	id   int64
	role Role
}

// NewActor creates a validated Actor.
func NewActor(id int64, role Role) (Actor, error) {
	if id <= 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("actorId",
			fmt.Errorf("%d is not a valid user id", id))
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// Validate ensures the actor was created via NewActor.
func (a Actor) Validate() error {
	if a.id == 0 {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}

// ID returns the acting user's id.
func (a Actor) ID() int64 {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// IsCustomer reports whether the actor holds the customer role.
func (a Actor) IsCustomer() bool {
	return a.role == RoleCustomer
}

// IsRestaurant reports whether the actor holds the restaurant role.
func (a Actor) IsRestaurant() bool {
	return a.role == RoleRestaurant
}

// IsDeliveryPartner reports whether the actor holds the delivery-partner role.
func (a Actor) IsDeliveryPartner() bool {
	return a.role == RoleDeliveryPartner
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}
