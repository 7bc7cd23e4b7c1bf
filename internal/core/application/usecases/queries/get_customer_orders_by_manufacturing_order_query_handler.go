package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersByManufacturingOrderQueryHandler retrieves the customer
// orders linked to a manufacturing order.
type GetCustomerOrdersByManufacturingOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersByManufacturingOrderQueryHandler creates a handler for
// correlation-link queries.
func NewGetCustomerOrdersByManufacturingOrderQueryHandler(
	db *gorm.DB,
) GetCustomerOrdersByManufacturingOrderQueryHandler {
	return GetCustomerOrdersByManufacturingOrderQueryHandler{db: db}
}

// Handle executes the query. An unlinked manufacturing order yields an empty
// result rather than an error.
func (h GetCustomerOrdersByManufacturingOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersByManufacturingOrderQuery,
) ([]CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(customerOrderSelect+"WHERE manufacturing_order_id = ? ORDER BY placed_at",
			query.ManufacturingOrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomerOrders(rows)
}
