package commands

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCancelCustomerOrderCommandIsNotConstructed = errors.New(
	"CancelCustomerOrderCommand must be created via NewCancelCustomerOrderCommand constructor",
)

// CancelCustomerOrderCommand represents a request to cancel a customer order
// with a business reason. Cancelling a delivered or already cancelled order
// fails.
type CancelCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelCustomerOrderCommand creates a command to cancel a customer order.
// The reason is trimmed and must not be blank.
func NewCancelCustomerOrderCommand(orderID kernel.UUID, reason string) (CancelCustomerOrderCommand, error) {
	command := CancelCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReason(reason),
	); err != nil {
		return CancelCustomerOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the business reason for the cancellation.
func (c CancelCustomerOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelCustomerOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelCustomerOrderCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
