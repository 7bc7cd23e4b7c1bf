package customerorder

import (
	"errors"
	"fmt"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is an immutable value object describing a single line of a
// customer order: what was bought, how many, and at what unit price.
type OrderItem struct {
	productCode string
	description string
	quantity    int
	unitPrice   kernel.Money

	guard kernel.ConstructorGuard
}

// NewOrderItem creates an order line. The product code and description are
// trimmed and must not be blank, quantity must be positive, and the unit
// price must be a positive amount.
func NewOrderItem(productCode, description string, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	productCode = strings.TrimSpace(productCode)
	description = strings.TrimSpace(description)

	if productCode == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("productCode")
	}
	if description == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("description")
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("quantity must be positive, got %d", quantity),
		)
	}
	if err := unitPrice.Validate(); err != nil {
		return OrderItem{}, err
	}
	if !unitPrice.IsPositive() {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("unit price must be positive, got %s", unitPrice),
		)
	}

	return OrderItem{
		productCode: productCode,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderItem was created through the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductCode returns the catalogue code of the product.
func (i OrderItem) ProductCode() string {
	return i.productCode
}

// Description returns the human readable product description.
func (i OrderItem) Description() string {
	return i.description
}

// Quantity returns how many units the line covers.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price multiplied by quantity.
func (i OrderItem) TotalPrice() (kernel.Money, error) {
	return i.unitPrice.Multiply(decimal.NewFromInt(int64(i.quantity)))
}
