package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetCustomerOrdersByManufacturingOrderQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersByManufacturingOrderQuery must be created via " +
		"NewGetCustomerOrdersByManufacturingOrderQuery constructor",
)

// GetCustomerOrdersByManufacturingOrderQuery retrieves the customer orders
// linked to a manufacturing order through the correlation index.
type GetCustomerOrdersByManufacturingOrderQuery struct {
	manufacturingOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersByManufacturingOrderQuery creates a query over the
// correlation link.
func NewGetCustomerOrdersByManufacturingOrderQuery(
	manufacturingOrderID kernel.UUID,
) (GetCustomerOrdersByManufacturingOrderQuery, error) {
	if err := manufacturingOrderID.Validate(); err != nil {
		return GetCustomerOrdersByManufacturingOrderQuery{}, err
	}

	return GetCustomerOrdersByManufacturingOrderQuery{
		manufacturingOrderID: manufacturingOrderID,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersByManufacturingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersByManufacturingOrderQueryIsNotConstructed)
}

// ManufacturingOrderID returns the manufacturing order identifier to filter by.
func (q GetCustomerOrdersByManufacturingOrderQuery) ManufacturingOrderID() kernel.UUID {
	return q.manufacturingOrderID
}
