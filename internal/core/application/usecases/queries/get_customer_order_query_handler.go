package queries

import (
	"context"

	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrderQueryHandler retrieves a single customer order from the database.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderQueryHandler creates a handler for single customer order queries.
func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given identifier is stored.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(customerOrderSelect+"WHERE id = ?", query.OrderID().Bytes()).Rows()
	if err != nil {
		return CustomerOrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanCustomerOrders(rows)
	if err != nil {
		return CustomerOrderResponse{}, err
	}

	if len(orders) == 0 {
		return CustomerOrderResponse{}, errs.NewObjectNotFoundError(
			"customer order", query.OrderID().String())
	}

	return orders[0], nil
}
