package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrConfirmCustomerOrderCommandIsNotConstructed = errors.New(
	"ConfirmCustomerOrderCommand must be created via NewConfirmCustomerOrderCommand constructor",
)

// ConfirmCustomerOrderCommand represents a request to confirm a placed
// customer order. Confirming an order that is not in PLACED status is a
// silent no-op, so redelivered confirmations are harmless.
type ConfirmCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCustomerOrderCommand creates a command to confirm a customer order.
func NewConfirmCustomerOrderCommand(orderID kernel.UUID) (ConfirmCustomerOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmCustomerOrderCommand{}, err
	}

	return ConfirmCustomerOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
