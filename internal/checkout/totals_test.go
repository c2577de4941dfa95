package checkout

import (
	"testing"

	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_EmptyCart_AllZero(t *testing.T) {
	totals := ComputeTotals(nil, DefaultOptions())

	assert.Equal(t, Totals{}, totals)
}

func TestComputeTotals_BelowThreshold(t *testing.T) {
	items := []domain.CartItem{
		{Price: 100, Quantity: 2},
		{Price: 50, Quantity: 1},
	}

	totals := ComputeTotals(items, DefaultOptions())

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 13.0, totals.GST, "12.5 rounds half away from zero")
	assert.Equal(t, 40.0, totals.Shipping)
	assert.Equal(t, 303.0, totals.GrandTotal)
}

func TestComputeTotals_AtThreshold_FreeShipping(t *testing.T) {
	items := []domain.CartItem{{Price: 500, Quantity: 1}}

	totals := ComputeTotals(items, DefaultOptions())

	assert.Equal(t, 500.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 25.0, totals.GST)
	assert.Equal(t, 525.0, totals.GrandTotal)
}

func TestComputeTotals_AboveThreshold_FreeShipping(t *testing.T) {
	items := []domain.CartItem{{Price: 400, Quantity: 2}}

	totals := ComputeTotals(items, DefaultOptions())

	assert.Equal(t, 0.0, totals.Shipping)
}

func TestComputeTotals_JustBelowThreshold_ChargesFlatFee(t *testing.T) {
	items := []domain.CartItem{{Price: 499, Quantity: 1}}

	totals := ComputeTotals(items, DefaultOptions())

	assert.Equal(t, 40.0, totals.Shipping)
}

func TestComputeTotals_CustomOptions(t *testing.T) {
	items := []domain.CartItem{{Price: 100, Quantity: 1}}
	opts := Options{TaxRate: 0.18, FreeShippingThreshold: 1000, FlatShippingFee: 70}

	totals := ComputeTotals(items, opts)

	assert.Equal(t, 18.0, totals.GST)
	assert.Equal(t, 70.0, totals.Shipping)
	assert.Equal(t, 188.0, totals.GrandTotal)
}

func TestComputeTotals_IsPure(t *testing.T) {
	items := []domain.CartItem{{Price: 100, Quantity: 2}}

	first := ComputeTotals(items, DefaultOptions())
	second := ComputeTotals(items, DefaultOptions())

	assert.Equal(t, first, second)
	assert.Equal(t, 2, items[0].Quantity, "input must not be mutated")
}
