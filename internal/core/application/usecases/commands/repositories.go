// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and event publication after commit.
package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
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

	// EventPuller drains the domain events buffered by the aggregates
	// touched in the unit of work. Handlers call it after Commit and pass
	// the result to the publisher, which yields publish-after-commit.
	EventPuller interface {
		PullEvents() []kernel.DomainEvent
	}

	// CustomerOrderRepoFactory provides access to the customer order
	// repository within a transaction.
	CustomerOrderRepoFactory interface {
		CustomerOrderRepository() ports.CustomerOrderRepository
	}

	// ManufacturingOrderRepoFactory provides access to the manufacturing
	// order repository within a transaction.
	ManufacturingOrderRepoFactory interface {
		ManufacturingOrderRepository() ports.ManufacturingOrderRepository
	}

	// CustomerOrderUoW manages transactions for customer-order-only operations.
	CustomerOrderUoW interface {
		TxManager
		EventPuller
		CustomerOrderRepoFactory
	}

	// CustomerOrderUoWFactory creates new customer order unit of work instances.
	CustomerOrderUoWFactory interface {
		Create() CustomerOrderUoW
	}

	// ManufacturingOrderUoW manages transactions for manufacturing-order-only
	// operations.
	ManufacturingOrderUoW interface {
		TxManager
		EventPuller
		ManufacturingOrderRepoFactory
	}

	// ManufacturingOrderUoWFactory creates new manufacturing order unit of
	// work instances.
	ManufacturingOrderUoWFactory interface {
		Create() ManufacturingOrderUoW
	}
)
