package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles lifecycle transitions on orders.
//
// Authorization happens against the loaded order inside the transaction: the
// owning restaurant may perform any legal transition, while the assigned
// delivery partner is limited to the delivery leg (picked up, on the way,
// delivered) of their own orders. The transition itself is delegated to the
// aggregate, which appends the history entry.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityProvider
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, identity ports.IdentityProvider,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
	}
}

// Handle processes the transition command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	changedBy, err := h.authorize(ctx, cmd.Actor(), aggregate, cmd.NextStatus())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.NextStatus(), changedBy, cmd.Notes()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpdateOrderStatusCommandHandler) authorize(
	ctx context.Context, actor kernel.Actor, aggregate *order.Order, next order.Status,
) (order.ChangedBy, error) {
	switch {
	case actor.IsRestaurant():
		owns, err := h.identity.IsRestaurantOwner(ctx, actor.ID(), aggregate.RestaurantID())
		if err != nil {
			return "", err
		}
		if !owns {
			return "", errs.NewForbiddenError(actor.ID(), "manage this order")
		}
		return order.ChangedByRestaurant, nil

	case actor.IsDeliveryPartner():
		if !aggregate.IsAssignedPartner(actor.ID()) || !next.IsDeliveryPhase() {
			return "", errs.NewForbiddenError(actor.ID(), "update this order's delivery status")
		}
		return order.ChangedByDeliveryPartner, nil

	default:
		return "", errs.NewForbiddenError(actor.ID(), "change order status")
	}
}
