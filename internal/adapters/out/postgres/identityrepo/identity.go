// Package identityrepo answers the ownership questions authorization needs.
// Authentication itself happens at the boundary; this package only resolves
// relations like "does this user own that restaurant".
package identityrepo

import (
	"context"

	"gorm.io/gorm"
)

// GormIdentityProvider implements IdentityProvider over the restaurants
// table.
type GormIdentityProvider struct {
	db *gorm.DB
}

// NewGormIdentityProvider creates an identity provider on the given
// connection.
func NewGormIdentityProvider(db *gorm.DB) *GormIdentityProvider {
	return &GormIdentityProvider{db: db}
}

// IsRestaurantOwner reports whether the user owns the restaurant.
func (p *GormIdentityProvider) IsRestaurantOwner(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).Table("restaurants").
		Where("id = ? AND owner_id = ?", restaurantID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
