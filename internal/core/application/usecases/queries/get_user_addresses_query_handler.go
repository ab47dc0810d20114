package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserAddressesQueryHandler retrieves a customer's saved addresses. The
// listing is scoped to the actor; the default address sorts first.
type GetUserAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetUserAddressesQueryHandler creates a handler for address listings.
func NewGetUserAddressesQueryHandler(db *gorm.DB) GetUserAddressesQueryHandler {
	return GetUserAddressesQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice for a user with no saved
// addresses.
func (h GetUserAddressesQueryHandler) Handle(
	ctx context.Context, query GetUserAddressesQuery,
) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsCustomer() {
		return nil, errs.NewForbiddenError(query.Actor().ID(), "list saved addresses")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			address,
			landmark,
			city,
			state,
			pincode,
			latitude,
			longitude,
			is_default,
			created_at
		FROM addresses
		WHERE user_id = ?
		ORDER BY is_default DESC, created_at DESC, id DESC
	`, query.Actor().ID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]AddressResponse, 0)
	for rows.Next() {
		var (
			resp     AddressResponse
			lat, lng sql.NullFloat64
		)

		if err = rows.Scan(
			&resp.ID,
			&resp.Label,
			&resp.Address,
			&resp.Landmark,
			&resp.City,
			&resp.State,
			&resp.Pincode,
			&lat,
			&lng,
			&resp.IsDefault,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if lat.Valid {
			resp.Latitude = &lat.Float64
		}
		if lng.Valid {
			resp.Longitude = &lng.Float64
		}

		addresses = append(addresses, resp)
	}

	return addresses, rows.Err()
}
