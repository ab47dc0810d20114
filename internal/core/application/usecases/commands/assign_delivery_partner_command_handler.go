package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

var (
	// ErrNoOrderToAssign signals that no order is waiting for a delivery
	// partner. A normal outcome between peaks, not a failure.
	ErrNoOrderToAssign = errors.New("no order waiting for a delivery partner")

	// ErrNoPartnerAvailable signals that every delivery partner is busy.
	ErrNoPartnerAvailable = errors.New("no delivery partner available")
)

// AssignDeliveryPartnerCommandHandler pairs orders waiting for pickup with
// free delivery partners.
//
// One attempt assigns at most one order. The order's partner reference and
// the partner's availability flip inside a single transaction, so a crash
// mid-assignment never strands a partner marked busy without an order.
type AssignDeliveryPartnerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDeliveryPartnerCommandHandler creates a handler for partner
// assignment.
func NewAssignDeliveryPartnerCommandHandler(uowFactory AssignmentUoWFactory) AssignDeliveryPartnerCommandHandler {
	return AssignDeliveryPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one assignment attempt.
// Returns ErrNoOrderToAssign or ErrNoPartnerAvailable when the pool is empty
// on either side.
func (h AssignDeliveryPartnerCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	waiting, err := orderRepo.GetFirstReadyForPickupUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderToAssign
	}
	if err != nil {
		return err
	}

	partner, err := partnerRepo.GetFirstAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPartnerAvailable
	}
	if err != nil {
		return err
	}

	if err = waiting.AssignDeliveryPartner(partner.UserID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, waiting); err != nil {
		return err
	}

	if err = partnerRepo.SetAvailability(ctx, partner.ID, false); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
