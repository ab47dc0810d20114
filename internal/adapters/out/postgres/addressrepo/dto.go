// Package addressrepo persists customer delivery addresses. The
// single-default invariant lives in the address use cases; this package only
// provides the primitives they compose inside a transaction.
package addressrepo

import (
	"time"

	"marketplace/internal/core/domain/model/address"
)

// AddressDTO represents the database structure for persisting addresses.
type AddressDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index"`
	Label     string `gorm:"size:64"`
	Address   string
	Landmark  string
	City      string `gorm:"size:128"`
	State     string `gorm:"size:128"`
	Pincode   string `gorm:"size:16"`
	Latitude  *float64
	Longitude *float64
	IsDefault bool      `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(aggregate *address.Address) AddressDTO {
	details := aggregate.Details()
	return AddressDTO{
		ID:        aggregate.ID(),
		UserID:    aggregate.UserID(),
		Label:     details.Label,
		Address:   details.Address,
		Landmark:  details.Landmark,
		City:      details.City,
		State:     details.State,
		Pincode:   details.Pincode,
		Latitude:  details.Latitude,
		Longitude: details.Longitude,
		IsDefault: aggregate.IsDefault(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	return address.RestoreAddress(dto.ID, dto.UserID, address.Details{
		Label:     dto.Label,
		Address:   dto.Address,
		Landmark:  dto.Landmark,
		City:      dto.City,
		State:     dto.State,
		Pincode:   dto.Pincode,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}, dto.IsDefault, dto.CreatedAt)
}
