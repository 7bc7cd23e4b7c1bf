package kernel_test

import (
	"testing"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurrency(t *testing.T, code string) kernel.Currency {
	t.Helper()
	c, err := kernel.NewCurrency(code)
	require.NoError(t, err)
	return c
}

func TestNewCurrency(t *testing.T) {
	t.Run("should create known currency with its fraction digits", func(t *testing.T) {
		usd := mustCurrency(t, "USD")
		assert.Equal(t, "USD", usd.Code())
		assert.Equal(t, 2, usd.FractionDigits())
		require.NoError(t, usd.Validate())

		jpy := mustCurrency(t, "JPY")
		assert.Equal(t, 0, jpy.FractionDigits())
	})

	t.Run("should default unknown codes to two fraction digits", func(t *testing.T) {
		c := mustCurrency(t, "PLN")
		assert.Equal(t, 2, c.FractionDigits())
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		for _, code := range []string{"", "US", "usd", "DOLLAR", "U$D"} {
			_, err := kernel.NewCurrency(code)
			require.Error(t, err, "code %q", code)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("zero value currency fails validation", func(t *testing.T) {
		var c kernel.Currency
		require.Error(t, c.Validate())
	})
}

func TestNewMoney(t *testing.T) {
	usd := func(t *testing.T) kernel.Currency { return mustCurrency(t, "USD") }

	t.Run("should round to the currency fraction digits", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"), usd(t))

		require.NoError(t, err)
		assert.Equal(t, "USD 10.01", m.String())
	})

	t.Run("zero fraction digit currency rounds to whole units", func(t *testing.T) {
		jpy := mustCurrency(t, "JPY")
		m, err := kernel.NewMoney(decimal.RequireFromString("100.5"), jpy)

		require.NoError(t, err)
		assert.Equal(t, "JPY 101", m.String())
	})

	t.Run("should fail with unconstructed currency", func(t *testing.T) {
		var c kernel.Currency
		_, err := kernel.NewMoney(decimal.NewFromInt(1), c)
		require.Error(t, err)
	})

	t.Run("should parse string amounts", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("150.00", usd(t))
		require.NoError(t, err)
		assert.Equal(t, "USD 150.00", m.String())

		_, err = kernel.NewMoneyFromString("not-a-number", usd(t))
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	usd := mustCurrency(t, "USD")
	eur := mustCurrency(t, "EUR")

	t.Run("add and subtract with matching currency", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("100.50", usd)
		b, _ := kernel.NewMoneyFromString("49.50", usd)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "USD 150.00", sum.String())

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "USD 51.00", diff.String())
	})

	t.Run("currency mismatch fails", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.00", usd)
		b, _ := kernel.NewMoneyFromString("10.00", eur)

		_, err := a.Add(b)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "cannot operate on USD and EUR")

		_, err = a.Subtract(b)
		require.Error(t, err)
	})

	t.Run("multiply scales and rounds", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("150.00", usd)

		total, err := price.Multiply(decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "USD 750.00", total.String())

		odd, _ := kernel.NewMoneyFromString("0.10", usd)
		scaled, err := odd.Multiply(decimal.RequireFromString("0.333"))
		require.NoError(t, err)
		assert.Equal(t, "USD 0.03", scaled.String())
	})

	t.Run("zero value money fails arithmetic", func(t *testing.T) {
		var zero kernel.Money
		a, _ := kernel.NewMoneyFromString("10.00", usd)

		_, err := zero.Add(a)
		require.Error(t, err)
		_, err = a.Add(zero)
		require.Error(t, err)
		_, err = zero.Multiply(decimal.NewFromInt(2))
		require.Error(t, err)
	})
}

func TestMoney_Predicates(t *testing.T) {
	usd := mustCurrency(t, "USD")

	zero, err := kernel.ZeroMoney(usd)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())

	positive, _ := kernel.NewMoneyFromString("0.01", usd)
	assert.True(t, positive.IsPositive())

	same, _ := kernel.NewMoneyFromString("0.01", usd)
	assert.True(t, positive.IsEqual(same))
	assert.False(t, positive.IsEqual(zero))
}
