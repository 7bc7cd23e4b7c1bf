package kernel

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCurrencyIsNotConstructed indicates that a Currency was not created via NewCurrency.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError("Currency must be created via NewCurrency")

// ErrMoneyIsNotConstructed indicates that a Money value was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// currencyFractionDigits lists the minor-unit digits for the currencies the
// system trades in. Codes outside this table default to two digits.
var currencyFractionDigits = map[string]int{
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"CHF": 2,
	"JPY": 0,
	"KRW": 0,
}

const defaultFractionDigits = 2

// Currency is a value object identifying an ISO 4217 currency and the number
// of fraction digits its amounts are rounded to.
type Currency struct {
	code           string
	fractionDigits int

	guard ConstructorGuard
}

// NewCurrency creates a Currency from a three-letter ISO code.
// Returns an error if the code is not exactly three uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if len(code) != 3 {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause(
			"currency code is invalid",
			fmt.Errorf("%q is not a three-letter ISO 4217 code", code),
		)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Currency{}, errs.NewValueIsInvalidErrorWithCause(
				"currency code is invalid",
				fmt.Errorf("%q is not a three-letter ISO 4217 code", code),
			)
		}
	}

	digits, ok := currencyFractionDigits[code]
	if !ok {
		digits = defaultFractionDigits
	}

	return Currency{
		code:           code,
		fractionDigits: digits,
		guard:          NewConstructorGuard(),
	}, nil
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// FractionDigits returns the number of minor-unit digits amounts are rounded to.
func (c Currency) FractionDigits() int {
	return c.fractionDigits
}

// IsEqual compares two currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

// Validate ensures the Currency was created through NewCurrency.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Money is an immutable value object combining a decimal amount with a currency.
// Amounts are rounded half-up to the currency's fraction digits on construction,
// and arithmetic is only defined between values of the same currency.
//
// Example:
//
//	usd, _ := kernel.NewCurrency("USD")
//	price, _ := kernel.NewMoney(decimal.NewFromFloat(150.00), usd)
//	total, _ := price.Multiply(decimal.NewFromInt(5))
//	fmt.Println(total) // "USD 750.00"
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money value, rounding the amount half-up to the
// currency's fraction digits.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount.Round(int32(currency.FractionDigits())),
		currency: currency,
	}, nil
}

// NewMoneyFromString parses a decimal string amount, for callers that receive
// amounts as text (APIs, persistence).
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d, currency)
}

// ZeroMoney creates a zero amount in the given currency.
func ZeroMoney(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two amounts.
// Returns an error if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.validateSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two amounts.
// Returns an error if the currencies differ.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.validateSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply returns the amount scaled by the given factor,
// rounded back to the currency's fraction digits.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Mul(factor), m.currency)
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two Money values have the same currency and amount.
func (m Money) IsEqual(other Money) bool {
	return m.currency.IsEqual(other.currency) && m.amount.Equal(other.amount)
}

// String formats the amount as "<code> <amount>" with the currency's fraction digits.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency.Code(), m.amount.StringFixed(int32(m.currency.FractionDigits())))
}

// Validate ensures the Money value carries a properly constructed currency.
func (m Money) Validate() error {
	if err := m.currency.Validate(); err != nil {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

func (m Money) validateSameCurrency(other Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := other.Validate(); err != nil {
		return err
	}
	if !m.currency.IsEqual(other.currency) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency is invalid",
			fmt.Errorf("cannot operate on %s and %s", m.currency.Code(), other.currency.Code()),
		)
	}
	return nil
}
