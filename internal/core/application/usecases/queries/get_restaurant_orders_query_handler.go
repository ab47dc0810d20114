package queries

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler retrieves a restaurant's order queue.
// Only the owning restaurant user and admins may read it.
type GetRestaurantOrdersQueryHandler struct {
	db       *gorm.DB
	identity ports.IdentityProvider
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order
// listings.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB, identity ports.IdentityProvider) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db, identity: identity}
}

// Handle executes the query. Returns the restaurant's orders newest first,
// optionally narrowed to one status.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context, query GetRestaurantOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(ctx, query); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			order_number,
			customer_id,
			restaurant_id,
			status,
			payment_method,
			payment_status,
			final_total,
			created_at
		FROM orders
		WHERE restaurant_id = ?
	`
	args := []any{query.RestaurantID()}

	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += " AND status = ?"
		args = append(args, *filter)
	}
	sqlQuery += " ORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func (h GetRestaurantOrdersQueryHandler) authorize(ctx context.Context, query GetRestaurantOrdersQuery) error {
	if query.Actor().IsAdmin() {
		return nil
	}

	if query.Actor().IsRestaurant() {
		owns, err := h.identity.IsRestaurantOwner(ctx, query.Actor().ID(), query.RestaurantID())
		if err != nil {
			return err
		}
		if owns {
			return nil
		}
	}

	return errs.NewForbiddenError(query.Actor().ID(), "view this restaurant's orders")
}
