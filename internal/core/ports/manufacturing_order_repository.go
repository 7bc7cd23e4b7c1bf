package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
)

// ManufacturingOrderRepository defines the persistence contract for
// manufacturing order aggregates.
type ManufacturingOrderRepository interface {
	// Add persists a new manufacturing order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *manufacturing.Order) error

	// Update persists changes to an existing manufacturing order aggregate.
	// The write is conditional on the version loaded with the aggregate;
	// a concurrent update surfaces as errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *manufacturing.Order) error

	// Get retrieves a manufacturing order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*manufacturing.Order, error)

	// Exists reports whether a manufacturing order with the given id is
	// stored. The auto-creation handler relies on this check to stay
	// idempotent under redelivered events.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// FindByStatus retrieves all orders currently in the given status.
	FindByStatus(ctx context.Context, status manufacturing.Status) ([]*manufacturing.Order, error)

	// FindOverdue retrieves live orders whose expected completion has
	// passed without production finishing.
	FindOverdue(ctx context.Context) ([]*manufacturing.Order, error)

	// Delete removes a manufacturing order from storage.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
