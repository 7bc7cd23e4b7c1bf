package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetManufacturingOrdersByStatusQueryHandler retrieves manufacturing orders
// in a given status from the database.
type GetManufacturingOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetManufacturingOrdersByStatusQueryHandler creates a handler for
// status-filtered manufacturing order queries.
func NewGetManufacturingOrdersByStatusQueryHandler(db *gorm.DB) GetManufacturingOrdersByStatusQueryHandler {
	return GetManufacturingOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns all matching orders, oldest first.
func (h GetManufacturingOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetManufacturingOrdersByStatusQuery,
) ([]ManufacturingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(manufacturingOrderSelect+"WHERE status = ? ORDER BY created_at", int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanManufacturingOrders(rows)
}
