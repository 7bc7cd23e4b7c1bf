package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Domain events follow a two-step publish-after-commit protocol: aggregates
// buffer events while the transaction runs, Commit makes the state durable,
// and PullEvents afterwards hands the buffered events to the publisher. An
// event therefore never reaches a subscriber before the write it describes
// is visible to reads.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CustomerOrderRepository returns a CustomerOrderRepository instance bound
	// to the current transaction.
	CustomerOrderRepository() CustomerOrderRepository

	// ManufacturingOrderRepository returns a ManufacturingOrderRepository
	// instance bound to the current transaction.
	ManufacturingOrderRepository() ManufacturingOrderRepository

	// PullEvents drains the pending domain events of every aggregate touched
	// in this unit of work. Call it after Commit and pass the result to the
	// publisher; calling it a second time yields nothing.
	PullEvents() []kernel.DomainEvent
}
