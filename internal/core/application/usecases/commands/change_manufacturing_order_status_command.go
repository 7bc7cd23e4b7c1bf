package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/guard"
)

var ErrChangeManufacturingOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeManufacturingOrderStatusCommand must be created via NewChangeManufacturingOrderStatusCommand constructor",
)

// ChangeManufacturingOrderStatusCommand represents a request to move a
// manufacturing order to a new production status. The transition is strict;
// a forbidden move fails.
type ChangeManufacturingOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  manufacturing.Status

	guard guard.ConstructorGuard
}

// NewChangeManufacturingOrderStatusCommand creates a command to change a
// manufacturing order's status.
func NewChangeManufacturingOrderStatusCommand(
	orderID kernel.UUID,
	status manufacturing.Status,
) (ChangeManufacturingOrderStatusCommand, error) {
	command := ChangeManufacturingOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return ChangeManufacturingOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeManufacturingOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeManufacturingOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c ChangeManufacturingOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c ChangeManufacturingOrderStatusCommand) Status() manufacturing.Status {
	return c.status
}

func (c *ChangeManufacturingOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeManufacturingOrderStatusCommand) setStatus(status manufacturing.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
