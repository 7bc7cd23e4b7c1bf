package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
	"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
)

// GetCustomerOrderQuery retrieves a single customer order by its identifier,
// including line items and the manufacturing correlation link.
type GetCustomerOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderQuery creates a query for a single customer order.
func NewGetCustomerOrderQuery(orderID kernel.UUID) (GetCustomerOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCustomerOrderQuery{}, err
	}

	return GetCustomerOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetCustomerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
