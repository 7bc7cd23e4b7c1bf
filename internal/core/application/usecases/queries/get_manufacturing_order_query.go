package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetManufacturingOrderQueryIsNotConstructed = errors.New(
	"GetManufacturingOrderQuery must be created via NewGetManufacturingOrderQuery constructor",
)

// GetManufacturingOrderQuery retrieves a single manufacturing order by its
// identifier, including the production window.
type GetManufacturingOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManufacturingOrderQuery creates a query for a single manufacturing order.
func NewGetManufacturingOrderQuery(orderID kernel.UUID) (GetManufacturingOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetManufacturingOrderQuery{}, err
	}

	return GetManufacturingOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManufacturingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetManufacturingOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetManufacturingOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
