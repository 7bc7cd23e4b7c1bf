package queries

import (
	"context"

	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetManufacturingOrderQueryHandler retrieves a single manufacturing order
// from the database.
type GetManufacturingOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetManufacturingOrderQueryHandler creates a handler for single
// manufacturing order queries.
func NewGetManufacturingOrderQueryHandler(db *gorm.DB) GetManufacturingOrderQueryHandler {
	return GetManufacturingOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given identifier is stored.
func (h GetManufacturingOrderQueryHandler) Handle(
	ctx context.Context,
	query GetManufacturingOrderQuery,
) (ManufacturingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return ManufacturingOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(manufacturingOrderSelect+"WHERE id = ?", query.OrderID().Bytes()).Rows()
	if err != nil {
		return ManufacturingOrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanManufacturingOrders(rows)
	if err != nil {
		return ManufacturingOrderResponse{}, err
	}

	if len(orders) == 0 {
		return ManufacturingOrderResponse{}, errs.NewObjectNotFoundError(
			"manufacturing order", query.OrderID().String())
	}

	return orders[0], nil
}
