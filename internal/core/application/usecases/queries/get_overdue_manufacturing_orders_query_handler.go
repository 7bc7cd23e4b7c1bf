package queries

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/manufacturing"

	"gorm.io/gorm"
)

// GetOverdueManufacturingOrdersQueryHandler retrieves manufacturing orders
// that have slipped past their expected completion.
type GetOverdueManufacturingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueManufacturingOrdersQueryHandler creates a handler for overdue
// manufacturing order queries.
func NewGetOverdueManufacturingOrdersQueryHandler(db *gorm.DB) GetOverdueManufacturingOrdersQueryHandler {
	return GetOverdueManufacturingOrdersQueryHandler{db: db}
}

// Handle executes the query. An order counts as overdue when its expected
// completion is in the past, it has not recorded an actual completion, and it
// is still in a live status. Results are sorted by expected completion so the
// most delayed orders come first.
func (h GetOverdueManufacturingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueManufacturingOrdersQuery,
) ([]ManufacturingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		manufacturingOrderSelect+`
		WHERE actual_completion IS NULL
		  AND expected_completion < ?
		  AND status NOT IN (?, ?)
		ORDER BY expected_completion
	`, time.Now(), int(manufacturing.Completed), int(manufacturing.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanManufacturingOrders(rows)
}
