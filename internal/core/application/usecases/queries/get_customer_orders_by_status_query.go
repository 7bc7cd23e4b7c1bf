package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetCustomerOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersByStatusQuery must be created via NewGetCustomerOrdersByStatusQuery constructor",
)

// GetCustomerOrdersByStatusQuery retrieves all customer orders currently in
// the given lifecycle status.
type GetCustomerOrdersByStatusQuery struct {
	status customerorder.Status

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersByStatusQuery creates a query filtered by order status.
func NewGetCustomerOrdersByStatusQuery(status customerorder.Status) (GetCustomerOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetCustomerOrdersByStatusQuery{}, err
	}

	return GetCustomerOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetCustomerOrdersByStatusQuery) Status() customerorder.Status {
	return q.status
}
