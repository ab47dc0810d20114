package commands

import (
	"context"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"
)

// AddAddressCommandHandler handles saving new delivery addresses. Saved
// addresses belong to customers; other roles are rejected.
//
// The single-default invariant is maintained here: a user's first address
// becomes the default regardless of the request, and a requested default
// clears every other default the user holds in the same transaction.
type AddAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewAddAddressCommandHandler creates a handler for address creation.
func NewAddAddressCommandHandler(uowFactory AddressUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the persisted address.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) (*address.Address, error) {
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
	userID := cmd.Actor().ID()

	owned, err := addressRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The first address a user saves is always the default.
	makeDefault := cmd.IsDefault() || owned == 0

	if makeDefault {
		if err = addressRepo.ClearDefaults(ctx, userID); err != nil {
			return nil, err
		}
	}

	aggregate, err := address.NewAddress(userID, cmd.Details(), makeDefault)
	if err != nil {
		return nil, err
	}

	if err = addressRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
