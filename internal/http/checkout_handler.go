package http

import (
	"net/http"

	"github.com/mudit2208/mehta-masala-storefront/internal/cart"
	"github.com/mudit2208/mehta-masala-storefront/internal/checkout"
)

type CheckoutHandler struct {
	store *cart.Store
	opts  checkout.Options
}

func NewCheckoutHandler(store *cart.Store, opts checkout.Options) *CheckoutHandler {
	return &CheckoutHandler{
		store: store,
		opts:  opts,
	}
}

// Totals recomputes subtotal, GST, shipping and grand total from the
// current cart. Derived on every call, never stored.
func (h *CheckoutHandler) Totals(w http.ResponseWriter, r *http.Request) {
	current, err := h.store.Get(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, checkout.ComputeTotals(current.Items, h.opts))
}
