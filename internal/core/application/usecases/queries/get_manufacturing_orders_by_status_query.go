package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetManufacturingOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetManufacturingOrdersByStatusQuery must be created via " +
		"NewGetManufacturingOrdersByStatusQuery constructor",
)

// GetManufacturingOrdersByStatusQuery retrieves all manufacturing orders
// currently in the given production status.
type GetManufacturingOrdersByStatusQuery struct {
	status manufacturing.Status

	guard guard.ConstructorGuard
}

// NewGetManufacturingOrdersByStatusQuery creates a query filtered by
// production status.
func NewGetManufacturingOrdersByStatusQuery(
	status manufacturing.Status,
) (GetManufacturingOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetManufacturingOrdersByStatusQuery{}, err
	}

	return GetManufacturingOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManufacturingOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetManufacturingOrdersByStatusQueryIsNotConstructed)
}

// Status returns the production status to filter by.
func (q GetManufacturingOrdersByStatusQuery) Status() manufacturing.Status {
	return q.status
}
