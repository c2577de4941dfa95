package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mudit2208/mehta-masala-storefront/internal/pincode"
)

type PincodeHandler struct {
	client *pincode.Client
}

func NewPincodeHandler(client *pincode.Client) *PincodeHandler {
	return &PincodeHandler{client: client}
}

// Lookup autofills city/state for a pincode. Lookup failure is not an
// error for the checkout form: it answers with empty fields and the
// customer fills them in.
func (h *PincodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")

	locality, err := h.client.Lookup(r.Context(), pin)
	if errors.Is(err, pincode.ErrInvalidPincode) {
		respondError(w, http.StatusBadRequest, "invalid_pincode", err.Error())
		return
	}
	if err != nil {
		log.Printf("pincode lookup failed for %s: %v", pin, err)
		respondJSON(w, http.StatusOK, pincode.Locality{})
		return
	}
	respondJSON(w, http.StatusOK, locality)
}
