package customerorder

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrCustomerInfoIsNotConstructed is returned when a CustomerInfo was not
// created through NewCustomerInfo.
var ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo constructor")

// CustomerInfo is an immutable value object identifying the buyer and
// where the order ships to.
type CustomerInfo struct {
	customerID kernel.UUID
	name       string
	email      string
	address    string

	guard kernel.ConstructorGuard
}

// NewCustomerInfo creates customer details for an order. All text fields are
// trimmed and must not be blank.
func NewCustomerInfo(customerID kernel.UUID, name, email, address string) (CustomerInfo, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerInfo{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)

	if name == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("email")
	}
	if address == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("address")
	}

	return CustomerInfo{
		customerID: customerID,
		name:       name,
		email:      email,
		address:    address,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CustomerInfo was created through the constructor.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

// CustomerID returns the buyer's identifier.
func (c CustomerInfo) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the buyer's name.
func (c CustomerInfo) Name() string {
	return c.name
}

// Email returns the buyer's contact email.
func (c CustomerInfo) Email() string {
	return c.email
}

// Address returns the shipping address.
func (c CustomerInfo) Address() string {
	return c.address
}
