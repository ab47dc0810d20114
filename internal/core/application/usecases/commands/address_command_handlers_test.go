package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func homeDetails() address.Details {
	return address.Details{
		Label:   "Home",
		Address: "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func TestAddAddressCommandHandler_Handle_FirstAddressForcedDefault(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddAddressCommand(customerActor(1), homeDetails(), false)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("CountForUser", ctx, int64(1)).Return(int64(0), nil).Once(),
		repo.On("ClearDefaults", ctx, int64(1)).Return(nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, saved.IsDefault())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddAddressCommandHandler_Handle_NonDefaultKeepsFlag(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddAddressCommand(customerActor(1), homeDetails(), false)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("CountForUser", ctx, int64(1)).Return(int64(2), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, saved.IsDefault())
	repo.AssertExpectations(t)
}

func TestAddAddressCommandHandler_Handle_RequestedDefaultClearsOthers(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddAddressCommand(customerActor(1), homeDetails(), true)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("CountForUser", ctx, int64(1)).Return(int64(3), nil).Once(),
		repo.On("ClearDefaults", ctx, int64(1)).Return(nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, saved.IsDefault())
	repo.AssertExpectations(t)
}

func TestUpdateAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	updated := homeDetails()
	updated.Label = "Office"
	cmd, err := commands.NewUpdateAddressCommand(customerActor(1), 5, updated, false)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(testAddress(t, 5, 1), nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Office", saved.Details().Label)
	repo.AssertExpectations(t)
}

func TestAddressCommandHandlers_Handle_NonCustomerForbidden(t *testing.T) {
	ctx := t.Context()
	factory := new(MockAddressUoWFactory)

	tests := map[string]func() error{
		"add": func() error {
			cmd, err := commands.NewAddAddressCommand(restaurantActor(7), homeDetails(), false)
			require.NoError(t, err)
			h := commands.NewAddAddressCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			return err
		},
		"update": func() error {
			cmd, err := commands.NewUpdateAddressCommand(partnerActor(7), 5, homeDetails(), false)
			require.NoError(t, err)
			h := commands.NewUpdateAddressCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			return err
		},
		"set default": func() error {
			cmd, err := commands.NewSetDefaultAddressCommand(restaurantActor(7), 5)
			require.NoError(t, err)
			h := commands.NewSetDefaultAddressCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			return err
		},
		"delete": func() error {
			cmd, err := commands.NewDeleteAddressCommand(partnerActor(7), 5)
			require.NoError(t, err)
			h := commands.NewDeleteAddressCommandHandler(factory)
			return h.Handle(ctx, cmd)
		},
	}

	for name, handle := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, handle(), errs.ErrForbidden)
		})
	}

	// The gate fires before any transaction starts.
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateAddressCommandHandler_Handle_RequestedDefaultClearsOthers(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateAddressCommand(customerActor(1), 5, homeDetails(), true)
	require.NoError(t, err)

	stored, err := address.RestoreAddress(5, 1, homeDetails(), false, testAddress(t, 5, 1).CreatedAt())
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(stored, nil).Once(),
		repo.On("ClearDefaults", ctx, int64(1)).Return(nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, saved.IsDefault())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAddressCommandHandler_Handle_FalseFlagKeepsCurrentDefault(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateAddressCommand(customerActor(1), 5, homeDetails(), false)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(testAddress(t, 5, 1), nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, saved.IsDefault())
	repo.AssertNotCalled(t, "ClearDefaults", ctx, int64(1))
	repo.AssertExpectations(t)
}

func TestUpdateAddressCommandHandler_Handle_ForeignAddressForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateAddressCommand(customerActor(1), 5, homeDetails(), false)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(testAddress(t, 5, 42), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAddressCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertExpectations(t)
}

func TestSetDefaultAddressCommandHandler_Handle_ClearsThenMarks(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetDefaultAddressCommand(customerActor(1), 5)
	require.NoError(t, err)

	stored, err := address.RestoreAddress(5, 1, homeDetails(), false, testAddress(t, 5, 1).CreatedAt())
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(stored, nil).Once(),
		repo.On("ClearDefaults", ctx, int64(1)).Return(nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetDefaultAddressCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, saved.IsDefault())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetDefaultAddressCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetDefaultAddressCommand(customerActor(1), 5)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(nil, errs.NewObjectNotFoundError("addressId", int64(5))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetDefaultAddressCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteAddressCommandHandler_Handle_NonDefaultDelete(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteAddressCommand(customerActor(1), 5)
	require.NoError(t, err)

	stored, err := address.RestoreAddress(5, 1, homeDetails(), false, testAddress(t, 5, 1).CreatedAt())
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(stored, nil).Once(),
		repo.On("Delete", ctx, int64(5)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAddressCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteAddressCommandHandler_Handle_DefaultDeletePromotesNewest(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteAddressCommand(customerActor(1), 5)
	require.NoError(t, err)

	remaining, err := address.RestoreAddress(8, 1, homeDetails(), false, testAddress(t, 8, 1).CreatedAt())
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(testAddress(t, 5, 1), nil).Once(),
		repo.On("Delete", ctx, int64(5)).Return(nil).Once(),
		repo.On("GetNewestForUser", ctx, int64(1)).Return(remaining, nil).Once(),
		repo.On("Update", ctx, remaining).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAddressCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, remaining.IsDefault())
	repo.AssertExpectations(t)
}

func TestDeleteAddressCommandHandler_Handle_LastAddressDelete(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteAddressCommand(customerActor(1), 5)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(testAddress(t, 5, 1), nil).Once(),
		repo.On("Delete", ctx, int64(5)).Return(nil).Once(),
		repo.On("GetNewestForUser", ctx, int64(1)).
			Return(nil, errs.NewObjectNotFoundError("userId", int64(1))).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAddressCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestDeleteAddressCommandHandler_Handle_ForeignAddressForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteAddressCommand(customerActor(1), 5)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(5)).Return(testAddress(t, 5, 42), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAddressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	repo.AssertExpectations(t)
}
