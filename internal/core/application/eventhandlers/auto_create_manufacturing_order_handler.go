// Package eventhandlers contains the subscribers that keep the customer
// order and manufacturing order lifecycles consistent. Each handler runs in
// its own unit of work and must be idempotent: the bus delivers at least
// once, so duplicates and out-of-order arrivals are absorbed as no-ops.
package eventhandlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/ports"
)

// Auto-created orders are scheduled one day out with a one-week window.
const (
	autoCreateStartDelay = 24 * time.Hour
	autoCreateLeadTime   = 7 * 24 * time.Hour
)

// AutoCreateManufacturingOrderHandler creates a manufacturing order when a
// customer order is confirmed. The manufacturing order reuses the customer
// order id, which later lets the link handler correlate the pair. A repeated
// confirmation event finds the order already present and does nothing.
type AutoCreateManufacturingOrderHandler struct {
	uowFactory commands.ManufacturingOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAutoCreateManufacturingOrderHandler creates the auto-creation subscriber.
func NewAutoCreateManufacturingOrderHandler(
	uowFactory commands.ManufacturingOrderUoWFactory,
	publisher ports.EventPublisher,
) *AutoCreateManufacturingOrderHandler {
	return &AutoCreateManufacturingOrderHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reacts to customer order status updates. Only the transition into
// CONFIRMED triggers creation; every other update is ignored.
func (h *AutoCreateManufacturingOrderHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	statusUpdated, ok := event.(customerorder.OrderStatusUpdated)
	if !ok {
		return nil
	}

	if statusUpdated.NewStatus != customerorder.Confirmed.String() {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ManufacturingOrderRepository()
	exists, err := repo.Exists(ctx, statusUpdated.OrderID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	order, err := buildAutoCreatedOrder(statusUpdated.OrderID)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}

func buildAutoCreatedOrder(orderID kernel.UUID) (*manufacturing.Order, error) {
	productCode := "AUTO-" + strings.ToUpper(orderID.String()[:8])
	spec, err := manufacturing.NewProductSpecification(
		productCode,
		fmt.Sprintf("Production run for customer order %s", orderID),
		1,
		"generated from customer order confirmation",
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	timeline, err := manufacturing.NewTimeline(now.Add(autoCreateStartDelay), now.Add(autoCreateLeadTime))
	if err != nil {
		return nil, err
	}

	return manufacturing.NewOrder(orderID, spec, timeline)
}
