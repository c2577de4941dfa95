package order

import (
	"context"
	"sync"

	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
)

// mockAPI records calls to the backend collaborator; each step can be
// made to fail independently.
type mockAPI struct {
	m sync.Mutex

	createOrderErr        error
	createPaymentOrderErr error
	verifyPaymentErr      error

	createOrderCalls  []backend.CreateOrderRequest
	paymentOrderCalls []float64
	verifyCalls       int
	persistedOrderID  string
}

func (m *mockAPI) CreateOrder(_ context.Context, req backend.CreateOrderRequest) (*backend.CreateOrderResponse, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createOrderErr != nil {
		return nil, m.createOrderErr
	}
	m.createOrderCalls = append(m.createOrderCalls, req)
	if m.persistedOrderID == "" {
		m.persistedOrderID = "SRV-1001"
	}
	return &backend.CreateOrderResponse{Success: true, OrderID: m.persistedOrderID}, nil
}

func (m *mockAPI) CreatePaymentOrder(_ context.Context, amount float64) (*backend.PaymentOrder, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createPaymentOrderErr != nil {
		return nil, m.createPaymentOrderErr
	}
	m.paymentOrderCalls = append(m.paymentOrderCalls, amount)
	return &backend.PaymentOrder{
		Success: true,
		Key:     "rzp_test_key",
		Amount:  amount,
		OrderID: "pay_order_1",
	}, nil
}

func (m *mockAPI) VerifyPayment(_ context.Context, _, _, _ string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.verifyPaymentErr != nil {
		return m.verifyPaymentErr
	}
	m.verifyCalls++
	return nil
}

type mockGateway struct {
	capture *PaymentCapture
	err     error
	calls   int
}

func (g *mockGateway) Capture(_ context.Context, _ *backend.PaymentOrder) (*PaymentCapture, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.capture, nil
}
