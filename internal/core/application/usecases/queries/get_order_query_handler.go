package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with items and history from the
// database.
//
// Visibility is checked against the loaded row: the owning customer, the
// assigned delivery partner, and admins see the order directly; a restaurant
// actor is checked for ownership through the identity collaborator.
type GetOrderQueryHandler struct {
	db       *gorm.DB
	identity ports.IdentityProvider
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB, identity ports.IdentityProvider) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, identity: identity}
}

// Handle executes the query. Returns ObjectNotFound if the order does not
// exist and Forbidden if the actor may not see it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.authorize(ctx, query.Actor(), resp); err != nil {
		return nil, err
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	if resp.History, err = h.loadHistory(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) authorize(ctx context.Context, actor kernel.Actor, resp *GetOrderQueryResponse) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsCustomer() && resp.CustomerID == actor.ID():
		return nil
	case actor.IsDeliveryPartner() && resp.DeliveryPartnerID != nil && *resp.DeliveryPartnerID == actor.ID():
		return nil
	case actor.IsRestaurant():
		owns, err := h.identity.IsRestaurantOwner(ctx, actor.ID(), resp.RestaurantID)
		if err != nil {
			return err
		}
		if owns {
			return nil
		}
	}

	return errs.NewForbiddenError(actor.ID(), "view this order")
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID int64) (*GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			restaurant_id,
			delivery_address_id,
			delivery_partner_id,
			status,
			payment_method,
			payment_status,
			subtotal,
			delivery_fee,
			tax,
			discount,
			final_total,
			special_instructions,
			estimated_delivery_time,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID).Row()

	var (
		resp                                       GetOrderQueryResponse
		partnerID                                  sql.NullInt64
		eta                                        sql.NullTime
		subtotal, deliveryFee, tax, discount, finalTotal int64
	)

	err := row.Scan(
		&resp.ID,
		&resp.OrderNumber,
		&resp.CustomerID,
		&resp.RestaurantID,
		&resp.DeliveryAddressID,
		&partnerID,
		&resp.Status,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&subtotal,
		&deliveryFee,
		&tax,
		&discount,
		&finalTotal,
		&resp.SpecialInstructions,
		&eta,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return nil, err
	}

	if partnerID.Valid {
		resp.DeliveryPartnerID = &partnerID.Int64
	}
	if eta.Valid {
		resp.EstimatedDeliveryTime = &eta.Time
	}

	if resp.Subtotal, err = kernel.NewMoneyFromPaise(subtotal); err != nil {
		return nil, err
	}
	if resp.DeliveryFee, err = kernel.NewMoneyFromPaise(deliveryFee); err != nil {
		return nil, err
	}
	if resp.Tax, err = kernel.NewMoneyFromPaise(tax); err != nil {
		return nil, err
	}
	if resp.Discount, err = kernel.NewMoneyFromPaise(discount); err != nil {
		return nil, err
	}
	if resp.FinalTotal, err = kernel.NewMoneyFromPaise(finalTotal); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID int64) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			menu_item_name,
			quantity,
			unit_price,
			line_total,
			instructions
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item                 OrderItemResponse
			unitPrice, lineTotal int64
		)

		if err = rows.Scan(
			&item.ID,
			&item.MenuItemID,
			&item.MenuItemName,
			&item.Quantity,
			&unitPrice,
			&lineTotal,
			&item.Instructions,
		); err != nil {
			return nil, err
		}

		if item.UnitPrice, err = kernel.NewMoneyFromPaise(unitPrice); err != nil {
			return nil, err
		}
		if item.LineTotal, err = kernel.NewMoneyFromPaise(lineTotal); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, orderID int64) ([]OrderHistoryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			changed_by,
			notes,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]OrderHistoryResponse, 0)
	for rows.Next() {
		var entry OrderHistoryResponse
		if err = rows.Scan(
			&entry.ID,
			&entry.Status,
			&entry.ChangedBy,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return history, rows.Err()
}
