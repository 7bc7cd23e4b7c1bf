package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateManufacturingOrderCommandIsNotConstructed = errors.New(
	"CreateManufacturingOrderCommand must be created via NewCreateManufacturingOrderCommand constructor",
)

// CreateManufacturingOrderCommand represents a request to put a new order
// into production with a given specification and expected timeline.
type CreateManufacturingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productSpec manufacturing.ProductSpecification
	timeline    manufacturing.Timeline

	guard guard.ConstructorGuard
}

// NewCreateManufacturingOrderCommand creates a command to start a new
// manufacturing order.
func NewCreateManufacturingOrderCommand(
	orderID kernel.UUID,
	productSpec manufacturing.ProductSpecification,
	timeline manufacturing.Timeline,
) (CreateManufacturingOrderCommand, error) {
	command := CreateManufacturingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProductSpec(productSpec),
		command.setTimeline(timeline),
	); err != nil {
		return CreateManufacturingOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManufacturingOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateManufacturingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new manufacturing order.
func (c CreateManufacturingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductSpec returns what the order should produce.
func (c CreateManufacturingOrderCommand) ProductSpec() manufacturing.ProductSpecification {
	return c.productSpec
}

// Timeline returns the expected production window.
func (c CreateManufacturingOrderCommand) Timeline() manufacturing.Timeline {
	return c.timeline
}

func (c *CreateManufacturingOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateManufacturingOrderCommand) setProductSpec(productSpec manufacturing.ProductSpecification) error {
	if err := productSpec.Validate(); err != nil {
		return err
	}

	c.productSpec = productSpec
	return nil
}

func (c *CreateManufacturingOrderCommand) setTimeline(timeline manufacturing.Timeline) error {
	if err := timeline.Validate(); err != nil {
		return err
	}

	c.timeline = timeline
	return nil
}
