package addressrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new address and records the generated id on the aggregate.
func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.SetID(dto.ID)
	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Update saves all columns of an existing address. Select("*") forces false
// booleans and cleared fields through, which struct Updates would skip.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("addressId", dto.ID)
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves an address by id.
func (r *GormAddressRepository) Get(ctx context.Context, id int64) (*address.Address, error) {
	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an address by id.
func (r *GormAddressRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("addressId", id)
	}

	return nil
}

// ClearDefaults removes the default flag from every address the user owns.
func (r *GormAddressRepository) ClearDefaults(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

// GetNewestForUser retrieves the user's most recently created address.
func (r *GormAddressRepository) GetNewestForUser(ctx context.Context, userID int64) (*address.Address, error) {
	var dto AddressDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountForUser returns how many addresses the user owns.
func (r *GormAddressRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
