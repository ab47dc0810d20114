package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves the acting user's own orders, newest first.
type GetUserOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for the actor's order history.
func NewGetUserOrdersQuery(actor kernel.Actor) (GetUserOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetUserOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderSummaryResponse is one row of an order listing. Items and history are
// not loaded for listings; the single-order query carries the full detail.
type OrderSummaryResponse struct {
	ID            int64
	OrderNumber   string
	CustomerID    int64
	RestaurantID  int64
	Status        order.Status
	PaymentMethod order.PaymentMethod
	PaymentStatus order.PaymentStatus
	FinalTotal    kernel.Money
	CreatedAt     time.Time
}
