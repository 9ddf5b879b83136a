// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"packtrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
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

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// UoW manages transactions across both order and client aggregates.
	// Used by commands that read the owner while writing an order.
	UoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
