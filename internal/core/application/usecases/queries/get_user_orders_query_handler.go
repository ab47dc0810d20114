package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a customer's order history from the
// database. The listing is customer-only and implicitly scoped to the actor;
// there is no way to ask for another user's orders.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order listings.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the actor's orders newest first; an
// empty slice when the user has never ordered.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context, query GetUserOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsCustomer() {
		return nil, errs.NewForbiddenError(query.Actor().ID(), "list customer orders")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.Actor().ID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			summary    OrderSummaryResponse
			finalTotal int64
		)

		if err := rows.Scan(
			&summary.ID,
			&summary.OrderNumber,
			&summary.CustomerID,
			&summary.RestaurantID,
			&summary.Status,
			&summary.PaymentMethod,
			&summary.PaymentStatus,
			&finalTotal,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}

		money, err := kernel.NewMoneyFromPaise(finalTotal)
		if err != nil {
			return nil, err
		}
		summary.FinalTotal = money

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
