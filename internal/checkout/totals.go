package checkout

import (
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	GST        float64 `json:"gst"`
	Shipping   float64 `json:"shipping"`
	GrandTotal float64 `json:"grand_total"`
}

type Options struct {
	TaxRate               float64
	FreeShippingThreshold float64
	FlatShippingFee       float64
}

func DefaultOptions() Options {
	return Options{
		TaxRate:               0.05,
		FreeShippingThreshold: 500,
		FlatShippingFee:       40,
	}
}

// ComputeTotals derives checkout totals from the cart lines. Pure: no
// I/O, no mutation, safe to recompute on every render.
//
// GST is rounded to the nearest whole rupee, halves away from zero
// (12.5 rounds to 13). Shipping is free for an empty cart and at or
// above the threshold.
func ComputeTotals(items []domain.CartItem, opts Options) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	gst, _ := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(opts.TaxRate)).
		Round(0).
		Float64()

	var shipping float64
	if subtotal > 0 && subtotal < opts.FreeShippingThreshold {
		shipping = opts.FlatShippingFee
	}

	return Totals{
		Subtotal:   subtotal,
		GST:        gst,
		Shipping:   shipping,
		GrandTotal: subtotal + gst + shipping,
	}
}
