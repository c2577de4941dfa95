package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
	"github.com/mudit2208/mehta-masala-storefront/internal/cart"
	"github.com/mudit2208/mehta-masala-storefront/internal/checkout"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
	"github.com/mudit2208/mehta-masala-storefront/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendMock struct {
	err error
}

func (b backendMock) CreateOrder(context.Context, backend.CreateOrderRequest) (*backend.CreateOrderResponse, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &backend.CreateOrderResponse{Success: true, OrderID: "SRV-7"}, nil
}

func (b backendMock) CreatePaymentOrder(_ context.Context, amount float64) (*backend.PaymentOrder, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &backend.PaymentOrder{Success: true, Key: "k", Amount: amount, OrderID: "po-1"}, nil
}

func (b backendMock) VerifyPayment(context.Context, string, string, string) error {
	return b.err
}

func newOrderRouter(t *testing.T, api backend.OrderAPI) (*chi.Mux, *cart.Store) {
	t.Helper()
	storage := cart.NewMemoryStorage()
	store := cart.NewStore(storage)
	submitter := order.NewSubmitter(store, storage, api, checkout.DefaultOptions())
	handler := NewOrderHandler(submitter)

	r := chi.NewRouter()
	r.Post("/orders/offline", handler.PlaceOffline)
	r.Post("/orders/online", handler.SubmitOnline)
	r.Get("/orders/last", handler.LastOrder)
	return r, store
}

func testCustomer() domain.Customer {
	return domain.Customer{
		Name:    "Asha Mehta",
		Phone:   "9876543210",
		Email:   "asha@example.com",
		Address: "12 Spice Market Road",
		City:    "Indore",
		Pincode: "452001",
	}
}

func addTestItem(t *testing.T, store *cart.Store) {
	t.Helper()
	product := &domain.Product{
		Slug: "red-chilli",
		Name: "Red Chilli Powder",
		Variants: []domain.Variant{
			{Weight: 100, Price: 40},
		},
	}
	_, err := store.Add(context.Background(), product, 100, 2)
	require.NoError(t, err)
}

func TestOrderHandler_PlaceOffline(t *testing.T) {
	r, store := newOrderRouter(t, backendMock{})
	addTestItem(t, store)

	recorder := doJSON(t, r, http.MethodPost, "/orders/offline", map[string]interface{}{
		"customer": testCustomer(),
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	var placed domain.Order
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&placed))
	assert.Contains(t, placed.ID, "ORD")
	assert.Len(t, placed.Items, 1)

	current, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current.Items)
}

func TestOrderHandler_PlaceOffline_ValidationError(t *testing.T) {
	r, store := newOrderRouter(t, backendMock{})
	addTestItem(t, store)

	bad := testCustomer()
	bad.Phone = "12345"
	recorder := doJSON(t, r, http.MethodPost, "/orders/offline", map[string]interface{}{
		"customer": bad,
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
	assert.Equal(t, "validation_failed", errResp.Code)
	assert.Equal(t, "Enter valid 10-digit phone number", errResp.Error)

	current, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, current.Items, 1, "cart survives a rejected submission")
}

func TestOrderHandler_PlaceOffline_EmptyCart(t *testing.T) {
	r, _ := newOrderRouter(t, backendMock{})

	recorder := doJSON(t, r, http.MethodPost, "/orders/offline", map[string]interface{}{
		"customer": testCustomer(),
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
	assert.Equal(t, "empty_cart", errResp.Code)
}

func TestOrderHandler_SubmitOnline_Paid(t *testing.T) {
	r, store := newOrderRouter(t, backendMock{})
	addTestItem(t, store)

	recorder := doJSON(t, r, http.MethodPost, "/orders/online", map[string]interface{}{
		"customer": testCustomer(),
		"paid":     true,
		"payment": map[string]string{
			"order_id":   "po-1",
			"payment_id": "pay-9",
			"signature":  "sig",
		},
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "COMPLETED", resp["status"])
	assert.Equal(t, "SRV-7", resp["order_id"])

	current, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current.Items)
}

func TestOrderHandler_SubmitOnline_PaidWithoutCapture(t *testing.T) {
	r, store := newOrderRouter(t, backendMock{})
	addTestItem(t, store)

	recorder := doJSON(t, r, http.MethodPost, "/orders/online", map[string]interface{}{
		"customer": testCustomer(),
		"paid":     true,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestOrderHandler_SubmitOnline_BackendFailure_KeepsCart(t *testing.T) {
	r, store := newOrderRouter(t, backendMock{err: errors.New("backend down")})
	addTestItem(t, store)

	recorder := doJSON(t, r, http.MethodPost, "/orders/online", map[string]interface{}{
		"customer": testCustomer(),
		"paid":     false,
	})

	require.Equal(t, http.StatusBadGateway, recorder.Code)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
	assert.Equal(t, "order_failed", errResp.Code)

	current, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, current.Items, 1)
}

func TestOrderHandler_LastOrder(t *testing.T) {
	r, store := newOrderRouter(t, backendMock{})

	recorder := doJSON(t, r, http.MethodGet, "/orders/last", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	addTestItem(t, store)
	doJSON(t, r, http.MethodPost, "/orders/offline", map[string]interface{}{
		"customer": testCustomer(),
	})

	recorder = doJSON(t, r, http.MethodGet, "/orders/last", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var last domain.Order
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&last))
	assert.Len(t, last.Items, 1)
}
