// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Domain events follow the publish-after-commit protocol: repositories track
// every aggregate they write, and after Commit the caller drains the tracked
// aggregates' event buffers through PullEvents and hands them to the
// publisher. Events of a rolled-back transaction are never published because
// the caller never reaches the drain step.
package postgres

import (
	"context"

	"ordermanagement/internal/adapters/out/postgres/customerorderrepo"
	"ordermanagement/internal/adapters/out/postgres/manufacturingorderrepo"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates modified during the transaction so
// their buffered domain events can be drained after a successful commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CustomerOrderRepository provides access to customer order persistence within
// the unit of work. Repository operations execute within the current
// transaction if one is active, otherwise directly on the main connection.
//
// The returned repository automatically tracks all aggregates it writes,
// making their events available via PullEvents after commit.
func (uow *GormUnitOfWork) CustomerOrderRepository() ports.CustomerOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return customerorderrepo.NewGormCustomerOrderRepository(db, uow)
}

// ManufacturingOrderRepository provides access to manufacturing order
// persistence within the unit of work.
func (uow *GormUnitOfWork) ManufacturingOrderRepository() ports.ManufacturingOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return manufacturingorderrepo.NewGormManufacturingOrderRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// PullEvents drains the buffered domain events of every tracked aggregate.
// Aggregates clear their buffers on drain, so a second call returns nothing
// even when the same aggregate was tracked more than once.
func (uow *GormUnitOfWork) PullEvents() []kernel.DomainEvent {
	var events []kernel.DomainEvent
	for _, tracked := range uow.trackedAggregates {
		if source, ok := tracked.Aggregate.(kernel.EventSource); ok {
			events = append(events, source.PullEvents()...)
		}
	}
	return events
}
