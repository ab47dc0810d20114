package queries

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves the order queue of one restaurant,
// optionally filtered to a single status.
type GetRestaurantOrdersQuery struct {
	actor        kernel.Actor
	restaurantID int64
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
// statusFilter may be nil to list every status.
func NewGetRestaurantOrdersQuery(
	actor kernel.Actor, restaurantID int64, statusFilter *order.Status,
) (GetRestaurantOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	if restaurantID <= 0 {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a valid restaurant id", restaurantID))
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetRestaurantOrdersQuery{}, err
		}
	}

	return GetRestaurantOrdersQuery{
		actor:        actor,
		restaurantID: restaurantID,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetRestaurantOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// RestaurantID returns the restaurant whose queue is requested.
func (q GetRestaurantOrdersQuery) RestaurantID() int64 {
	return q.restaurantID
}

// StatusFilter returns the requested status filter, nil for all statuses.
func (q GetRestaurantOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}
