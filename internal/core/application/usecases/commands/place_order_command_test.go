package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_Valid(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(customerActor(1), 10, 5,
		[]commands.OrderLine{{MenuItemID: 101, Quantity: 2}},
		order.PaymentMethodUPI, "leave at door")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, int64(10), cmd.RestaurantID())
	require.Equal(t, int64(5), cmd.DeliveryAddressID())
	require.Equal(t, "leave at door", cmd.SpecialInstructions())
	require.Len(t, cmd.Lines(), 1)
}

func TestNewPlaceOrderCommand_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		actor        kernel.Actor
		restaurantID int64
		addressID    int64
		lines        []commands.OrderLine
		method       order.PaymentMethod
	}{
		{
			name:         "zero actor",
			restaurantID: 10, addressID: 5,
			lines:  []commands.OrderLine{{MenuItemID: 101, Quantity: 1}},
			method: order.PaymentMethodCard,
		},
		{
			name:  "bad restaurant id",
			actor: customerActor(1), addressID: 5,
			lines:  []commands.OrderLine{{MenuItemID: 101, Quantity: 1}},
			method: order.PaymentMethodCard,
		},
		{
			name:  "bad address id",
			actor: customerActor(1), restaurantID: 10,
			lines:  []commands.OrderLine{{MenuItemID: 101, Quantity: 1}},
			method: order.PaymentMethodCard,
		},
		{
			name:  "empty cart",
			actor: customerActor(1), restaurantID: 10, addressID: 5,
			method: order.PaymentMethodCard,
		},
		{
			name:  "zero quantity",
			actor: customerActor(1), restaurantID: 10, addressID: 5,
			lines:  []commands.OrderLine{{MenuItemID: 101, Quantity: 0}},
			method: order.PaymentMethodCard,
		},
		{
			name:  "bad payment method",
			actor: customerActor(1), restaurantID: 10, addressID: 5,
			lines:  []commands.OrderLine{{MenuItemID: 101, Quantity: 1}},
			method: order.PaymentMethod("BARTER"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewPlaceOrderCommand(tt.actor, tt.restaurantID, tt.addressID, tt.lines, tt.method, "")
			require.Error(t, err)
		})
	}
}

func TestPlaceOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_Wrappers(t *testing.T) {
	accept, err := commands.NewAcceptOrderCommand(restaurantActor(77), 3)
	require.NoError(t, err)
	require.Equal(t, order.StatusConfirmed, accept.NextStatus())

	preparing, err := commands.NewMarkPreparingCommand(restaurantActor(77), 3)
	require.NoError(t, err)
	require.Equal(t, order.StatusPreparing, preparing.NextStatus())
	require.Equal(t, "Order is being prepared", preparing.Notes())

	ready, err := commands.NewMarkReadyForPickupCommand(restaurantActor(77), 3)
	require.NoError(t, err)
	require.Equal(t, order.StatusReadyForPickup, ready.NextStatus())

	reject, err := commands.NewRejectOrderCommand(restaurantActor(77), 3, "kitchen closed")
	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, reject.NextStatus())
	require.Equal(t, "Order rejected: kitchen closed", reject.Notes())
}

func TestNewUpdateOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(restaurantActor(77), 0, order.StatusConfirmed, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(restaurantActor(77), 3, order.Status("UNKNOWN"), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
