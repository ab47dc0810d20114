// Package catalogrepo reads the restaurant catalog: restaurants with their
// ordering configuration and menu items with current prices. The order core
// treats the catalog as an external collaborator and only ever reads from it.
package catalogrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// RestaurantDTO represents the restaurants read model.
type RestaurantDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID             int64  `gorm:"index"`
	Name                string `gorm:"size:255"`
	DeliveryFee         int64
	MinimumOrderAmount  int64
	DeliveryTimeMinutes int
	CreatedAt           time.Time
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the menu items read model.
type MenuItemDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"index"`
	Name         string `gorm:"size:255"`
	Price        int64
	IsAvailable  bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormCatalogProvider implements CatalogProvider over the catalog tables.
type GormCatalogProvider struct {
	db *gorm.DB
}

// NewGormCatalogProvider creates a catalog provider on the given connection.
func NewGormCatalogProvider(db *gorm.DB) *GormCatalogProvider {
	return &GormCatalogProvider{db: db}
}

// GetRestaurant resolves a restaurant by id.
func (p *GormCatalogProvider) GetRestaurant(ctx context.Context, id int64) (ports.Restaurant, error) {
	var dto RestaurantDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurantId", id)
		}
		return ports.Restaurant{}, err
	}

	deliveryFee, err := kernel.NewMoneyFromPaise(dto.DeliveryFee)
	if err != nil {
		return ports.Restaurant{}, err
	}
	minimumOrder, err := kernel.NewMoneyFromPaise(dto.MinimumOrderAmount)
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:                  dto.ID,
		OwnerID:             dto.OwnerID,
		Name:                dto.Name,
		DeliveryFee:         deliveryFee,
		MinimumOrderAmount:  minimumOrder,
		DeliveryTimeMinutes: dto.DeliveryTimeMinutes,
	}, nil
}

// GetMenuItem resolves a menu item by id with its current price and
// availability.
func (p *GormCatalogProvider) GetMenuItem(ctx context.Context, id int64) (ports.MenuItem, error) {
	var dto MenuItemDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItemId", id)
		}
		return ports.MenuItem{}, err
	}

	price, err := kernel.NewMoneyFromPaise(dto.Price)
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{
		ID:           dto.ID,
		RestaurantID: dto.RestaurantID,
		Name:         dto.Name,
		Price:        price,
		IsAvailable:  dto.IsAvailable,
	}, nil
}
