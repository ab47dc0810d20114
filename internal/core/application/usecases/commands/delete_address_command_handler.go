package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// DeleteAddressCommandHandler removes a saved address.
//
// Deleting the default address promotes the user's most recently created
// remaining address to default in the same transaction, keeping the
// single-default invariant intact. Deleting the last address leaves the user
// with none, which is a valid state.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address deletion.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsCustomer() {
		return errs.NewForbiddenError(cmd.Actor().ID(), "manage addresses")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	aggregate, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.Actor().ID()) {
		return errs.NewForbiddenError(cmd.Actor().ID(), "delete this address")
	}

	wasDefault := aggregate.IsDefault()
	if err = addressRepo.Delete(ctx, cmd.AddressID()); err != nil {
		return err
	}

	if wasDefault {
		if err = h.promoteReplacement(ctx, addressRepo, cmd.Actor().ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *DeleteAddressCommandHandler) promoteReplacement(
	ctx context.Context, addressRepo ports.AddressRepository, userID int64,
) error {
	newest, err := addressRepo.GetNewestForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	newest.MarkDefault()
	return addressRepo.Update(ctx, newest)
}
