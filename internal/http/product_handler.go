package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mudit2208/mehta-masala-storefront/internal/catalog"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

type ProductHandler struct {
	loader *catalog.Loader
}

func NewProductHandler(loader *catalog.Loader) *ProductHandler {
	return &ProductHandler{loader: loader}
}

// List returns all products, or the name matches when ?q= is present.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		respondJSON(w, http.StatusOK, h.loader.Search(r.Context(), query))
		return
	}
	respondJSON(w, http.StatusOK, h.loader.Fetch(r.Context()))
}

type productDetailDTO struct {
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	StartingPrice float64          `json:"starting_price"`
	Weights       []int            `json:"weights"`
	Variants      []domain.Variant `json:"variants"`
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.loader.FindBySlug(r.Context(), slug)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, productDetailDTO{
		Slug:          product.Slug,
		Name:          product.Name,
		Description:   product.Description,
		Image:         product.Image,
		StartingPrice: catalog.StartingPrice(product),
		Weights:       catalog.Weights(product),
		Variants:      product.Variants,
	})
}
