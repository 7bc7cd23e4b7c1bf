package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrCancelManufacturingOrderCommandIsNotConstructed = errors.New(
	"CancelManufacturingOrderCommand must be created via NewCancelManufacturingOrderCommand constructor",
)

// CancelManufacturingOrderCommand represents a request to abandon production
// on an order. Fails when production already finished or was cancelled.
type CancelManufacturingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelManufacturingOrderCommand creates a command to cancel a
// manufacturing order.
func NewCancelManufacturingOrderCommand(orderID kernel.UUID) (CancelManufacturingOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelManufacturingOrderCommand{}, err
	}

	return CancelManufacturingOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelManufacturingOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelManufacturingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelManufacturingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
