package commands

import (
	"context"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"
)

// UpdateAddressCommandHandler handles attribute updates on saved addresses.
// Only the owning customer may update an address. An update requesting
// default runs the same clear-then-set promotion as explicit set-default,
// inside the same transaction as the attribute change.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated address.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsCustomer() {
		return nil, errs.NewForbiddenError(cmd.Actor().ID(), "manage addresses")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	aggregate, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOwnedBy(cmd.Actor().ID()) {
		return nil, errs.NewForbiddenError(cmd.Actor().ID(), "update this address")
	}

	if err = aggregate.UpdateDetails(cmd.Details()); err != nil {
		return nil, err
	}

	if cmd.IsDefault() {
		if err = addressRepo.ClearDefaults(ctx, cmd.Actor().ID()); err != nil {
			return nil, err
		}
		aggregate.MarkDefault()
	}

	if err = addressRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
