// Package partnerrepo persists the delivery-partner pool used by the
// assignment job. Partners are not aggregates of this service; the pool is a
// thin table of availability flags keyed by the partner's user account.
package partnerrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// DeliveryPartnerDTO represents the delivery partner pool table.
type DeliveryPartnerDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	UserID      int64 `gorm:"uniqueIndex"`
	IsAvailable bool  `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for delivery partners.
func (DeliveryPartnerDTO) TableName() string {
	return "delivery_partners"
}

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GORM delivery-partner repository.
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// GetFirstAvailable retrieves an available delivery partner, lowest id
// first for stable assignment order.
func (r *GormPartnerRepository) GetFirstAvailable(ctx context.Context) (ports.DeliveryPartner, error) {
	var dto DeliveryPartnerDTO
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DeliveryPartner{}, errs.NewObjectNotFoundError("deliveryPartner", "available")
		}
		return ports.DeliveryPartner{}, err
	}

	return ports.DeliveryPartner{
		ID:          dto.ID,
		UserID:      dto.UserID,
		IsAvailable: dto.IsAvailable,
	}, nil
}

// SetAvailability marks a partner free or busy.
func (r *GormPartnerRepository) SetAvailability(ctx context.Context, partnerID int64, available bool) error {
	result := r.db.WithContext(ctx).Model(&DeliveryPartnerDTO{}).
		Where("id = ?", partnerID).
		Update("is_available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryPartnerId", partnerID)
	}

	return nil
}
