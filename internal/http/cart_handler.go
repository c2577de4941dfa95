package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mudit2208/mehta-masala-storefront/internal/cart"
	"github.com/mudit2208/mehta-masala-storefront/internal/catalog"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

type CartHandler struct {
	store  *cart.Store
	loader *catalog.Loader
}

func NewCartHandler(store *cart.Store, loader *catalog.Loader) *CartHandler {
	return &CartHandler{
		store:  store,
		loader: loader,
	}
}

// Weight arrives as interface{} so both `"weight": 250` and
// `"weight": "250"` resolve to the same cart line.
type AddItemRequestDTO struct {
	Slug     string      `json:"slug"`
	Weight   interface{} `json:"weight"`
	Quantity int         `json:"quantity"`
}

type ChangeQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type cartResponseDTO struct {
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

func cartResponse(c *domain.Cart) cartResponseDTO {
	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponseDTO{
		Items:     items,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.store.Get(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(current))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Slug == "" {
		respondError(w, http.StatusBadRequest, "invalid_slug", "slug is required")
		return
	}

	weight, err := cart.ParseWeight(req.Weight)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_weight", err.Error())
		return
	}

	product, err := h.loader.FindBySlug(r.Context(), req.Slug)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	updated, err := h.store.Add(r.Context(), product, weight, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}
	respondJSON(w, http.StatusCreated, cartResponse(updated))
}

func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	weight, err := cart.ParseWeight(chi.URLParam(r, "weight"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_weight", err.Error())
		return
	}

	var req ChangeQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be non-zero")
		return
	}

	updated, err := h.store.ChangeQuantity(r.Context(), slug, weight, req.Delta)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(updated))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	weight, err := cart.ParseWeight(chi.URLParam(r, "weight"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_weight", err.Error())
		return
	}

	updated, err := h.store.Remove(r.Context(), slug, weight)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(updated))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(&domain.Cart{}))
}

// Count serves the cart badge: just the sum of quantities.
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.ItemCount(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}
