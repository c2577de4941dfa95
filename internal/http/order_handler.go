package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
	"github.com/mudit2208/mehta-masala-storefront/internal/order"
)

type OrderHandler struct {
	submitter *order.Submitter
}

func NewOrderHandler(submitter *order.Submitter) *OrderHandler {
	return &OrderHandler{submitter: submitter}
}

type PaymentCaptureDTO struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

type PlaceOrderRequestDTO struct {
	Customer domain.Customer    `json:"customer"`
	Paid     bool               `json:"paid"`
	Payment  *PaymentCaptureDTO `json:"payment,omitempty"`
}

// PlaceOffline places a locally persisted order: validation, snapshot,
// last-order slot, cart cleared.
func (h *OrderHandler) PlaceOffline(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	placed, err := h.submitter.PlaceOffline(r.Context(), req.Customer)
	if err != nil {
		handleOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, placed)
}

// SubmitOnline runs the remote submission flow. Any step failure comes
// back as an error envelope and the cart stays intact for a retry.
func (h *OrderHandler) SubmitOnline(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// The hosted popup already ran in the browser; the capture it
	// produced stands in as the gateway for this submission.
	var gateway order.PaymentGateway
	if req.Paid {
		if req.Payment == nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "paid order requires payment capture details")
			return
		}
		capture := order.PaymentCapture{
			OrderID:   req.Payment.OrderID,
			PaymentID: req.Payment.PaymentID,
			Signature: req.Payment.Signature,
		}
		gateway = order.GatewayFunc(func(context.Context, *backend.PaymentOrder) (*order.PaymentCapture, error) {
			return &capture, nil
		})
	}

	result := h.submitter.SubmitOnline(r.Context(), req.Customer, req.Paid, gateway)
	if result.Err != nil {
		handleOrderError(w, result.Err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"status":   result.Status.String(),
		"order_id": result.OrderID,
	})
}

func (h *OrderHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	last, err := h.submitter.LastOrder(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load last order")
		return
	}
	if last == nil {
		respondError(w, http.StatusNotFound, "not_found", "no order has been placed")
		return
	}
	respondJSON(w, http.StatusOK, last)
}

func handleOrderError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, order.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	default:
		// Backend or payment failure: the cart was not touched, the
		// customer can retry.
		respondError(w, http.StatusBadGateway, "order_failed", err.Error())
	}
}

func isValidationError(err error) bool {
	for _, v := range []error{
		order.ErrNameRequired,
		order.ErrInvalidPhone,
		order.ErrInvalidEmail,
		order.ErrAddressTooShort,
		order.ErrCityRequired,
		order.ErrInvalidPincode,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
