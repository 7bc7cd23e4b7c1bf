// Package manufacturingorderrepo provides data transfer objects and mapping
// functions for manufacturing order persistence. This package implements the
// repository pattern for the manufacturing order aggregate, handling the
// conversion between domain entities and database representations.
package manufacturingorderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting manufacturing
// order aggregates. The version column backs the conditional update used
// for optimistic concurrency control.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProductSpec ProductSpecDTO `gorm:"embedded;embeddedPrefix:product_"`
	Status      int            `gorm:"index"`
	Timeline    TimelineDTO    `gorm:"embedded"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
}

// TableName specifies the database table name for manufacturing order entities.
func (OrderDTO) TableName() string {
	return "manufacturing_orders"
}

// ProductSpecDTO represents the embedded product specification within the
// manufacturing order table.
type ProductSpecDTO struct {
	Code           string
	Description    string
	Quantity       int
	Specifications string
}

// TimelineDTO represents the embedded production window within the
// manufacturing order table. Actual timestamps stay NULL until production
// starts or finishes.
type TimelineDTO struct {
	ExpectedStart      time.Time
	ExpectedCompletion time.Time `gorm:"index"`
	ActualStart        *time.Time
	ActualCompletion   *time.Time
}

// fromDomain converts a manufacturing order aggregate to its database representation.
func fromDomain(aggregate *manufacturing.Order) OrderDTO {
	spec := aggregate.ProductSpecification()
	timeline := aggregate.Timeline()

	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		ProductSpec: ProductSpecDTO{
			Code:           spec.ProductCode(),
			Description:    spec.Description(),
			Quantity:       spec.Quantity(),
			Specifications: spec.Specifications(),
		},
		Status: int(aggregate.Status()),
		Timeline: TimelineDTO{
			ExpectedStart:      timeline.ExpectedStart(),
			ExpectedCompletion: timeline.ExpectedCompletion(),
			ActualStart:        timeline.ActualStart(),
			ActualCompletion:   timeline.ActualCompletion(),
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
	}
}

// toDomain converts a database DTO to a manufacturing order aggregate.
// Reconstructs the complete aggregate including the production window using RestoreOrder.
func toDomain(dto OrderDTO) (*manufacturing.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spec, err := manufacturing.NewProductSpecification(
		dto.ProductSpec.Code,
		dto.ProductSpec.Description,
		dto.ProductSpec.Quantity,
		dto.ProductSpec.Specifications,
	)
	if err != nil {
		return nil, err
	}

	timeline, err := manufacturing.RestoreTimeline(
		dto.Timeline.ExpectedStart,
		dto.Timeline.ExpectedCompletion,
		dto.Timeline.ActualStart,
		dto.Timeline.ActualCompletion,
	)
	if err != nil {
		return nil, err
	}

	return manufacturing.RestoreOrder(
		id,
		spec,
		manufacturing.Status(dto.Status),
		timeline,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
