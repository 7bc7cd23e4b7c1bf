package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrPlaceCustomerOrderCommandIsNotConstructed = errors.New(
	"PlaceCustomerOrderCommand must be created via NewPlaceCustomerOrderCommand constructor",
)

// PlaceCustomerOrderCommand represents a request to place a new customer order.
// Encapsulates the buyer details and the priced order lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceCustomerOrderCommand(orderID, customerInfo, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceCustomerOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerInfo customerorder.CustomerInfo
	items        []customerorder.OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceCustomerOrderCommand creates a command to place a new customer order.
// Validates that the order ID and customer info are constructed and that at
// least one valid item is present.
func NewPlaceCustomerOrderCommand(
	orderID kernel.UUID,
	customerInfo customerorder.CustomerInfo,
	items []customerorder.OrderItem,
) (PlaceCustomerOrderCommand, error) {
	command := PlaceCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerInfo(customerInfo),
		command.setItems(items),
	); err != nil {
		return PlaceCustomerOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerInfo returns the buyer details.
func (c PlaceCustomerOrderCommand) CustomerInfo() customerorder.CustomerInfo {
	return c.customerInfo
}

// Items returns the order lines.
func (c PlaceCustomerOrderCommand) Items() []customerorder.OrderItem {
	return c.items
}

func (c *PlaceCustomerOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceCustomerOrderCommand) setCustomerInfo(customerInfo customerorder.CustomerInfo) error {
	if err := customerInfo.Validate(); err != nil {
		return err
	}

	c.customerInfo = customerInfo
	return nil
}

func (c *PlaceCustomerOrderCommand) setItems(items []customerorder.OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]customerorder.OrderItem(nil), items...)
	return nil
}
