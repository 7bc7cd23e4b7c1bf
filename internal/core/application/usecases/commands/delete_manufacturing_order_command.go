package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrDeleteManufacturingOrderCommandIsNotConstructed = errors.New(
	"DeleteManufacturingOrderCommand must be created via NewDeleteManufacturingOrderCommand constructor",
)

// DeleteManufacturingOrderCommand represents an administrative request to
// remove a manufacturing order from storage entirely. Regular lifecycle
// flows use cancellation instead.
type DeleteManufacturingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteManufacturingOrderCommand creates a command to delete a
// manufacturing order.
func NewDeleteManufacturingOrderCommand(orderID kernel.UUID) (DeleteManufacturingOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteManufacturingOrderCommand{}, err
	}

	return DeleteManufacturingOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteManufacturingOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteManufacturingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteManufacturingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
