package manufacturingorderrepo

import (
	"context"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormManufacturingOrderRepository implements ManufacturingOrderRepository using GORM.
type GormManufacturingOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManufacturingOrderRepository creates a new GORM manufacturing order repository.
func NewGormManufacturingOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormManufacturingOrderRepository {
	return &GormManufacturingOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manufacturing order to the database.
func (r *GormManufacturingOrderRepository) Add(ctx context.Context, aggregate *manufacturing.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing manufacturing order to the database.
// The write is conditional on the version loaded with the aggregate, so two
// racing status transitions never overwrite each other: the loser observes a
// VersionIsInvalidError and must reload.
func (r *GormManufacturingOrderRepository) Update(ctx context.Context, aggregate *manufacturing.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("manufacturing order version")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a manufacturing order by ID.
func (r *GormManufacturingOrderRepository) Get(ctx context.Context, id kernel.UUID) (*manufacturing.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manufacturing order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a manufacturing order with the given ID is stored.
func (r *GormManufacturingOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
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

// FindByStatus retrieves all manufacturing orders in the given status.
func (r *GormManufacturingOrderRepository) FindByStatus(
	ctx context.Context,
	status manufacturing.Status,
) ([]*manufacturing.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindOverdue retrieves live manufacturing orders whose expected completion
// has passed without production finishing.
func (r *GormManufacturingOrderRepository) FindOverdue(ctx context.Context) ([]*manufacturing.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("actual_completion IS NULL").
		Where("expected_completion < ?", time.Now()).
		Where("status NOT IN ?", []int{int(manufacturing.Completed), int(manufacturing.Cancelled)}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a manufacturing order from the database.
func (r *GormManufacturingOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("manufacturing order", id.String())
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*manufacturing.Order, error) {
	orders := make([]*manufacturing.Order, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
