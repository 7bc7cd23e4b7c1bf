package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrCompleteManufacturingOrderCommandIsNotConstructed = errors.New(
	"CompleteManufacturingOrderCommand must be created via NewCompleteManufacturingOrderCommand constructor",
)

// CompleteManufacturingOrderCommand represents a request to finish
// production. A pending order is walked through the in-progress status;
// completing an already completed order is a no-op.
type CompleteManufacturingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteManufacturingOrderCommand creates a command to complete a
// manufacturing order.
func NewCompleteManufacturingOrderCommand(orderID kernel.UUID) (CompleteManufacturingOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteManufacturingOrderCommand{}, err
	}

	return CompleteManufacturingOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteManufacturingOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteManufacturingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteManufacturingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
