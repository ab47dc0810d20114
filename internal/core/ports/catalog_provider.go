package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// MenuItem is the catalog's view of an orderable dish at one point in time.
// The price here is what gets frozen onto a new order; it is re-read at
// placement, never cached from an earlier listing.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        kernel.Money
	IsAvailable  bool
}

// Restaurant is the catalog's view of a restaurant's ordering configuration.
type Restaurant struct {
	ID                  int64
	OwnerID             int64
	Name                string
	DeliveryFee         kernel.Money
	MinimumOrderAmount  kernel.Money
	DeliveryTimeMinutes int
}

// CatalogProvider resolves menu items and restaurants from the catalog
// subsystem. The catalog is an external collaborator: the order core only
// reads current price, availability, and fee configuration from it.
type CatalogProvider interface {
	// GetRestaurant resolves a restaurant by id.
	// Returns ObjectNotFound if absent.
	GetRestaurant(ctx context.Context, id int64) (Restaurant, error)

	// GetMenuItem resolves a menu item by id with its current price and
	// availability. Returns ObjectNotFound if absent.
	GetMenuItem(ctx context.Context, id int64) (MenuItem, error)
}
