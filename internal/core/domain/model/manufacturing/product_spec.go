package manufacturing

import (
	"errors"
	"fmt"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrProductSpecificationIsNotConstructed is returned when a ProductSpecification
// was not created through NewProductSpecification.
var ErrProductSpecificationIsNotConstructed = errors.New(
	"ProductSpecification must be created via NewProductSpecification constructor",
)

// ProductSpecification is an immutable value object describing what a
// manufacturing order produces: the product, how many units, and the
// free-form technical specifications handed to the shop floor.
type ProductSpecification struct {
	productCode    string
	description    string
	quantity       int
	specifications string

	guard kernel.ConstructorGuard
}

// NewProductSpecification creates a validated ProductSpecification.
// All text fields are trimmed and must be non-blank; quantity must be positive.
func NewProductSpecification(
	productCode, description string,
	quantity int,
	specifications string,
) (ProductSpecification, error) {
	productCode = strings.TrimSpace(productCode)
	description = strings.TrimSpace(description)
	specifications = strings.TrimSpace(specifications)

	if productCode == "" {
		return ProductSpecification{}, errs.NewValueIsRequiredError("productCode")
	}
	if description == "" {
		return ProductSpecification{}, errs.NewValueIsRequiredError("description")
	}
	if specifications == "" {
		return ProductSpecification{}, errs.NewValueIsRequiredError("specifications")
	}
	if quantity <= 0 {
		return ProductSpecification{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return ProductSpecification{
		productCode:    productCode,
		description:    description,
		quantity:       quantity,
		specifications: specifications,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the specification was created through the constructor.
func (ps ProductSpecification) Validate() error {
	return ps.guard.Validate(ErrProductSpecificationIsNotConstructed)
}

// ProductCode returns the manufactured product's code.
func (ps ProductSpecification) ProductCode() string {
	return ps.productCode
}

// Description returns the human-readable product description.
func (ps ProductSpecification) Description() string {
	return ps.description
}

// Quantity returns the number of units to produce.
func (ps ProductSpecification) Quantity() int {
	return ps.quantity
}

// Specifications returns the technical production specifications.
func (ps ProductSpecification) Specifications() string {
	return ps.specifications
}
