package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerOrderResponse represents customer order information for read models.
// Monetary amounts are decimal strings paired with the order currency, and the
// status comes back in its wire form (for example "MANUFACTURING_IN_PROGRESS").
type CustomerOrderResponse struct {
	ID                   kernel.UUID
	CustomerID           kernel.UUID
	CustomerName         string
	CustomerEmail        string
	CustomerAddress      string
	Items                []OrderItemResponse
	TotalAmount          string
	Currency             string
	Status               string
	PlacedAt             time.Time
	UpdatedAt            time.Time
	ManufacturingOrderID *kernel.UUID
}

// OrderItemResponse represents a single order line within a customer order
// read model.
type OrderItemResponse struct {
	ProductCode string `json:"productCode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

const customerOrderSelect = `
	SELECT
		id,
		customer_id,
		customer_name,
		customer_email,
		customer_address,
		items,
		total_amount,
		currency,
		status,
		placed_at,
		updated_at,
		manufacturing_order_id
	FROM customer_orders
`

// scanCustomerOrders reads the rows produced by customerOrderSelect into
// response structs.
func scanCustomerOrders(rows *sql.Rows) ([]CustomerOrderResponse, error) {
	orders := make([]CustomerOrderResponse, 0)

	for rows.Next() {
		var (
			id                   uuid.UUID
			customerID           uuid.UUID
			name, email, address string
			items                []byte
			totalAmount          string
			currency             string
			status               int
			placedAt, updatedAt  time.Time
			manufacturingOrderID uuid.NullUUID
		)

		err := rows.Scan(
			&id,
			&customerID,
			&name,
			&email,
			&address,
			&items,
			&totalAmount,
			&currency,
			&status,
			&placedAt,
			&updatedAt,
			&manufacturingOrderID,
		)
		if err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		buyerID, err := kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}

		var itemResponses []OrderItemResponse
		if err = json.Unmarshal(items, &itemResponses); err != nil {
			return nil, err
		}

		response := CustomerOrderResponse{
			ID:              orderID,
			CustomerID:      buyerID,
			CustomerName:    name,
			CustomerEmail:   email,
			CustomerAddress: address,
			Items:           itemResponses,
			TotalAmount:     totalAmount,
			Currency:        currency,
			Status:          customerorder.Status(status).String(),
			PlacedAt:        placedAt,
			UpdatedAt:       updatedAt,
		}

		if manufacturingOrderID.Valid {
			linkID, linkErr := kernel.UUIDFromBytes(manufacturingOrderID.UUID[:])
			if linkErr != nil {
				return nil, linkErr
			}
			response.ManufacturingOrderID = &linkID
		}

		orders = append(orders, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
