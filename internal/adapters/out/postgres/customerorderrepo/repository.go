package customerorderrepo

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerOrderRepository implements CustomerOrderRepository using GORM.
type GormCustomerOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerOrderRepository creates a new GORM customer order repository.
func NewGormCustomerOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerOrderRepository {
	return &GormCustomerOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer order to the database.
func (r *GormCustomerOrderRepository) Add(ctx context.Context, aggregate *customerorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	dto.Version = 1
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer order to the database.
// The write is conditional on the version loaded with the aggregate. When a
// concurrent writer got there first the row count comes back zero and the
// caller receives a VersionIsInvalidError instead of silently losing the
// other transition.
func (r *GormCustomerOrderRepository) Update(ctx context.Context, aggregate *customerorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("customer order version")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer order by ID.
func (r *GormCustomerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customerorder.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a customer order with the given ID is stored.
func (r *GormCustomerOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindByCustomerID retrieves all orders placed by the given customer.
func (r *GormCustomerOrderRepository) FindByCustomerID(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*customerorder.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByStatus retrieves all customer orders in the given status.
func (r *GormCustomerOrderRepository) FindByStatus(
	ctx context.Context,
	status customerorder.Status,
) ([]*customerorder.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByManufacturingOrderID retrieves the customer orders linked to the
// given manufacturing order.
func (r *GormCustomerOrderRepository) FindByManufacturingOrderID(
	ctx context.Context,
	manufacturingOrderID kernel.UUID,
) ([]*customerorder.Order, error) {
	if err := manufacturingOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "manufacturing_order_id = ?", manufacturingOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a customer order from the database.
func (r *GormCustomerOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer order", id.String())
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*customerorder.Order, error) {
	orders := make([]*customerorder.Order, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
