package ports

import (
	"context"
)

// IdentityProvider supplies the ownership facts authorization needs beyond
// the actor itself. Identity is an external collaborator: the boundary has
// already authenticated the caller, and the core only asks for relations.
type IdentityProvider interface {
	// IsRestaurantOwner reports whether the user owns the restaurant.
	IsRestaurantOwner(ctx context.Context, userID, restaurantID int64) (bool, error)
}

// DeliveryPartner is the identity subsystem's view of a delivery partner.
// UserID is the partner's account id, which is what orders reference.
type DeliveryPartner struct {
	ID          int64
	UserID      int64
	IsAvailable bool
}

// PartnerRepository provides the delivery-partner pool for the assignment
// job. Availability flips happen in the same transaction as the order they
// pair with.
type PartnerRepository interface {
	// GetFirstAvailable retrieves an available delivery partner.
	// Returns ObjectNotFound when none is free.
	GetFirstAvailable(ctx context.Context) (DeliveryPartner, error)

	// SetAvailability marks a partner free or busy.
	SetAvailability(ctx context.Context, partnerID int64, available bool) error
}
