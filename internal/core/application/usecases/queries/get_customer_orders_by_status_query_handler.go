package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersByStatusQueryHandler retrieves customer orders in a given
// status from the database. Results are sorted by placement time so the
// oldest orders surface first.
type GetCustomerOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersByStatusQueryHandler creates a handler for status-filtered
// customer order queries.
func NewGetCustomerOrdersByStatusQueryHandler(db *gorm.DB) GetCustomerOrdersByStatusQueryHandler {
	return GetCustomerOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns all matching orders.
func (h GetCustomerOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersByStatusQuery,
) ([]CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(customerOrderSelect+"WHERE status = ? ORDER BY placed_at", int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomerOrders(rows)
}
