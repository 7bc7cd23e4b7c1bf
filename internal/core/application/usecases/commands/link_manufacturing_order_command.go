package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrLinkManufacturingOrderCommandIsNotConstructed = errors.New(
	"LinkManufacturingOrderCommand must be created via NewLinkManufacturingOrderCommand constructor",
)

// LinkManufacturingOrderCommand represents a request to correlate a customer
// order with a manufacturing order. Linking sets the correlation field only;
// it changes no status and publishes no event.
type LinkManufacturingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	manufacturingOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLinkManufacturingOrderCommand creates a command to link the two orders.
func NewLinkManufacturingOrderCommand(
	orderID, manufacturingOrderID kernel.UUID,
) (LinkManufacturingOrderCommand, error) {
	command := LinkManufacturingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setManufacturingOrderID(manufacturingOrderID),
	); err != nil {
		return LinkManufacturingOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkManufacturingOrderCommand) Validate() error {
	return c.guard.Validate(ErrLinkManufacturingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the customer order.
func (c LinkManufacturingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ManufacturingOrderID returns the identifier of the manufacturing order.
func (c LinkManufacturingOrderCommand) ManufacturingOrderID() kernel.UUID {
	return c.manufacturingOrderID
}

func (c *LinkManufacturingOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *LinkManufacturingOrderCommand) setManufacturingOrderID(manufacturingOrderID kernel.UUID) error {
	if err := manufacturingOrderID.Validate(); err != nil {
		return err
	}

	c.manufacturingOrderID = manufacturingOrderID
	return nil
}
