package commands

import (
	"context"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"
)

// SetDefaultAddressCommandHandler promotes one address to default.
//
// The clear-then-set pair runs inside one transaction, so a user never
// observes zero or two defaults. Promoting the current default is a no-op
// that still succeeds.
type SetDefaultAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewSetDefaultAddressCommandHandler creates a handler for default promotion.
func NewSetDefaultAddressCommandHandler(uowFactory AddressUoWFactory) SetDefaultAddressCommandHandler {
	return SetDefaultAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the promoted address.
func (h *SetDefaultAddressCommandHandler) Handle(
	ctx context.Context, cmd SetDefaultAddressCommand,
) (*address.Address, error) {
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
		return nil, errs.NewForbiddenError(cmd.Actor().ID(), "change this address")
	}

	if err = addressRepo.ClearDefaults(ctx, cmd.Actor().ID()); err != nil {
		return nil, err
	}

	aggregate.MarkDefault()
	if err = addressRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
