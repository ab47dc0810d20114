// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read optimized models straight from the
// database, but they enforce the same visibility rules as the write side:
// an order is visible to its customer, the owning restaurant, the assigned
// delivery partner, and admins.
package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items and status history.
type GetOrderQuery struct {
	actor   kernel.Actor
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(actor kernel.Actor, orderID int64) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderItemResponse is one line item in the order read model.
type OrderItemResponse struct {
	ID           int64
	MenuItemID   int64
	MenuItemName string
	Quantity     int
	UnitPrice    kernel.Money
	LineTotal    kernel.Money
	Instructions string
}

// OrderHistoryResponse is one status-history entry in the order read model.
type OrderHistoryResponse struct {
	ID        int64
	Status    order.Status
	ChangedBy order.ChangedBy
	Notes     string
	CreatedAt time.Time
}

// GetOrderQueryResponse is the full order read model: the order row plus its
// items and history, oldest history entry first.
type GetOrderQueryResponse struct {
	ID                    int64
	OrderNumber           string
	CustomerID            int64
	RestaurantID          int64
	DeliveryAddressID     int64
	DeliveryPartnerID     *int64
	Status                order.Status
	PaymentMethod         order.PaymentMethod
	PaymentStatus         order.PaymentStatus
	Subtotal              kernel.Money
	DeliveryFee           kernel.Money
	Tax                   kernel.Money
	Discount              kernel.Money
	FinalTotal            kernel.Money
	SpecialInstructions   string
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Items                 []OrderItemResponse
	History               []OrderHistoryResponse
}
