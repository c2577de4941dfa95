package order

import (
	"context"

	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
)

// PaymentCapture is what the hosted payment flow hands back once the
// customer completes payment in the gateway's own UI.
type PaymentCapture struct {
	OrderID   string
	PaymentID string
	Signature string
}

// PaymentGateway stands in for the hosted payment popup. The real
// implementation lives in the browser SDK; the submitter only needs the
// capture result to verify server-side.
type PaymentGateway interface {
	Capture(ctx context.Context, po *backend.PaymentOrder) (*PaymentCapture, error)
}

// GatewayFunc adapts a function to PaymentGateway.
type GatewayFunc func(ctx context.Context, po *backend.PaymentOrder) (*PaymentCapture, error)

func (f GatewayFunc) Capture(ctx context.Context, po *backend.PaymentOrder) (*PaymentCapture, error) {
	return f(ctx, po)
}
