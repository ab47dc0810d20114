// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a validated command object, a
// handler owning the transaction, and persistence through a unit of work.
// The acting identity is an explicit parameter on every command; the core
// never reads ambient request state.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AddressRepoFactory provides access to the address repository within a
	// transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// PartnerRepoFactory provides access to the delivery-partner repository
	// within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AddressUoW manages transactions for address-only operations.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// OrderAddressUoW manages transactions spanning order and address rows.
	// Order placement reads the delivery address and writes the order in the
	// same transaction.
	OrderAddressUoW interface {
		TxManager
		OrderRepoFactory
		AddressRepoFactory
	}

	// OrderAddressUoWFactory creates unit of work instances for placement.
	OrderAddressUoWFactory interface {
		Create() OrderAddressUoW
	}

	// AssignmentUoW manages transactions spanning orders and the delivery
	// partner pool. Pairing an order with a partner flips the partner's
	// availability in the same transaction.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// AssignmentUoWFactory creates unit of work instances for assignment.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
