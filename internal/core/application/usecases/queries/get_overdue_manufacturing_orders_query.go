package queries

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var ErrGetOverdueManufacturingOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueManufacturingOrdersQuery must be created via " +
		"NewGetOverdueManufacturingOrdersQuery constructor",
)

// GetOverdueManufacturingOrdersQuery retrieves all manufacturing orders whose
// expected completion has passed without production finishing. Completed and
// cancelled orders are never overdue.
//
// Example:
//
//	query := NewGetOverdueManufacturingOrdersQuery()
//	handler := NewGetOverdueManufacturingOrdersQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue orders: %w", err)
//	}
//
//	fmt.Printf("%d manufacturing orders are running late\n", len(overdue))
type GetOverdueManufacturingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueManufacturingOrdersQuery creates a query to retrieve overdue
// manufacturing orders. This is a parameterless query.
func NewGetOverdueManufacturingOrdersQuery() GetOverdueManufacturingOrdersQuery {
	return GetOverdueManufacturingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueManufacturingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueManufacturingOrdersQueryIsNotConstructed)
}
