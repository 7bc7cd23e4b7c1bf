package queries

import (
	"database/sql"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"

	"github.com/google/uuid"
)

// ManufacturingOrderResponse represents manufacturing order information for
// read models. The actual window stays nil until production starts or finishes.
type ManufacturingOrderResponse struct {
	ID                 kernel.UUID
	ProductCode        string
	Description        string
	Quantity           int
	Specifications     string
	Status             string
	ExpectedStart      time.Time
	ExpectedCompletion time.Time
	ActualStart        *time.Time
	ActualCompletion   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const manufacturingOrderSelect = `
	SELECT
		id,
		product_code,
		product_description,
		product_quantity,
		product_specifications,
		status,
		expected_start,
		expected_completion,
		actual_start,
		actual_completion,
		created_at,
		updated_at
	FROM manufacturing_orders
`

// scanManufacturingOrders reads the rows produced by manufacturingOrderSelect
// into response structs.
func scanManufacturingOrders(rows *sql.Rows) ([]ManufacturingOrderResponse, error) {
	orders := make([]ManufacturingOrderResponse, 0)

	for rows.Next() {
		var (
			id                            uuid.UUID
			code, description, specs      string
			quantity                      int
			status                        int
			expectedStart, expectedEnd    time.Time
			actualStart, actualCompletion sql.NullTime
			createdAt, updatedAt          time.Time
		)

		err := rows.Scan(
			&id,
			&code,
			&description,
			&quantity,
			&specs,
			&status,
			&expectedStart,
			&expectedEnd,
			&actualStart,
			&actualCompletion,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		response := ManufacturingOrderResponse{
			ID:                 orderID,
			ProductCode:        code,
			Description:        description,
			Quantity:           quantity,
			Specifications:     specs,
			Status:             manufacturing.Status(status).String(),
			ExpectedStart:      expectedStart,
			ExpectedCompletion: expectedEnd,
			CreatedAt:          createdAt,
			UpdatedAt:          updatedAt,
		}

		if actualStart.Valid {
			started := actualStart.Time
			response.ActualStart = &started
		}
		if actualCompletion.Valid {
			finished := actualCompletion.Time
			response.ActualCompletion = &finished
		}

		orders = append(orders, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
