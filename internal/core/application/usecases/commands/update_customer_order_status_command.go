package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrUpdateCustomerOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateCustomerOrderStatusCommand must be created via NewUpdateCustomerOrderStatusCommand constructor",
)

// UpdateCustomerOrderStatusCommand represents a request to move a customer
// order to a new status. Unlike the event-driven notifications, this is a
// strict transition: a forbidden move fails instead of no-opping.
type UpdateCustomerOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  customerorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateCustomerOrderStatusCommand creates a command to update an order's status.
func NewUpdateCustomerOrderStatusCommand(
	orderID kernel.UUID,
	status customerorder.Status,
) (UpdateCustomerOrderStatusCommand, error) {
	command := UpdateCustomerOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return UpdateCustomerOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateCustomerOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateCustomerOrderStatusCommand) Status() customerorder.Status {
	return c.status
}

func (c *UpdateCustomerOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateCustomerOrderStatusCommand) setStatus(status customerorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
