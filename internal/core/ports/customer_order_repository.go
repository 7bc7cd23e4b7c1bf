// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the event bus.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CustomerOrderRepository defines the persistence contract for customer
// order aggregates.
type CustomerOrderRepository interface {
	// Add persists a new customer order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customerorder.Order) error

	// Update persists changes to an existing customer order aggregate.
	// The write is conditional on the version loaded with the aggregate;
	// a concurrent update surfaces as errs.VersionIsInvalidError so that
	// racing status transitions never silently overwrite each other.
	Update(ctx context.Context, aggregate *customerorder.Order) error

	// Get retrieves a customer order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*customerorder.Order, error)

	// Exists reports whether a customer order with the given id is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// FindByCustomerID retrieves all orders placed by the given customer.
	FindByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*customerorder.Order, error)

	// FindByStatus retrieves all orders currently in the given status.
	FindByStatus(ctx context.Context, status customerorder.Status) ([]*customerorder.Order, error)

	// FindByManufacturingOrderID retrieves every customer order correlated
	// with the given manufacturing order. More than one customer order may
	// share the same manufacturing order.
	FindByManufacturingOrderID(ctx context.Context, manufacturingOrderID kernel.UUID) ([]*customerorder.Order, error)

	// Delete removes a customer order from storage.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
