// Package backend talks to the remote order/payment API. The storefront
// only ever POSTs JSON and reads a {success, error} envelope back; all
// order persistence and signature checking happens server-side.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

var ErrBackendRejected = errors.New("backend rejected request")

type CreateOrderRequest struct {
	Customer domain.Customer    `json:"customer"`
	Cart     []domain.CartItem  `json:"cart"`
	Total    float64            `json:"total"`
	Payment  domain.PaymentInfo `json:"payment"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type PaymentOrder struct {
	Success bool    `json:"success"`
	Key     string  `json:"key"`
	Amount  float64 `json:"amount"`
	OrderID string  `json:"order_id"`
	Error   string  `json:"error,omitempty"`
}

type verifyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OrderAPI is what the order submitter needs from the backend. Defined
// here so tests can substitute a mock client.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
	CreatePaymentOrder(ctx context.Context, amount float64) (*PaymentOrder, error)
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.post(ctx, "/create-order", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrBackendRejected, orDefault(resp.Error, "order was not accepted"))
	}
	return &resp, nil
}

func (c *Client) CreatePaymentOrder(ctx context.Context, amount float64) (*PaymentOrder, error) {
	var resp PaymentOrder
	body := map[string]float64{"amount": amount}
	if err := c.post(ctx, "/create-payment-order", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrBackendRejected, orDefault(resp.Error, "payment order was not created"))
	}
	return &resp, nil
}

func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	body := map[string]string{
		"order_id":   orderID,
		"payment_id": paymentID,
		"signature":  signature,
	}
	var resp verifyResponse
	if err := c.post(ctx, "/verify-payment", body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrBackendRejected, orDefault(resp.Error, "payment verification failed"))
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
