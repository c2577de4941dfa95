package order

import (
	"context"
	"errors"
	"log"

	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
	"github.com/mudit2208/mehta-masala-storefront/internal/checkout"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

// SubmissionResult reports where an online submission ended up. On
// failure Status is FAILED and Err carries the step's error; the cart
// is untouched in that case.
type SubmissionResult struct {
	Status  domain.SubmissionStatus
	OrderID string
	Err     error
}

// SubmitOnline drives the online order flow as a state machine:
//
//	INITIATED -> ORDER_CREATED -> PAYMENT_CAPTURED -> VERIFIED -> PERSISTED -> COMPLETED
//
// Each arrow is one awaited call to a collaborator; failure at any step
// transitions to FAILED without running the remaining steps. Clearing
// the local cart is the side effect of reaching COMPLETED only. The
// unpaid path (paid=false, the manual test order) skips the payment
// steps, ignores the gateway and goes straight from INITIATED to
// PERSISTED. The gateway is per-call: the capture comes out of the
// hosted popup the customer just completed.
func (s *Submitter) SubmitOnline(ctx context.Context, customer domain.Customer, paid bool, gateway PaymentGateway) *SubmissionResult {
	status := domain.SubmissionStatusInitiated

	if err := ValidateCustomer(customer); err != nil {
		return fail(status, err)
	}

	current, err := s.store.Get(ctx)
	if err != nil {
		return fail(status, err)
	}
	if len(current.Items) == 0 {
		return fail(status, ErrEmptyCart)
	}

	totals := checkout.ComputeTotals(current.Items, s.opts)

	if !paid {
		req := backend.CreateOrderRequest{
			Customer: customer,
			Cart:     current.Items,
			Total:    totals.GrandTotal,
			Payment:  domain.PaymentInfo{Method: "test", Status: "unpaid"},
		}
		orderID, status, err := s.persistOrder(ctx, status, req)
		if err != nil {
			return fail(status, err)
		}
		return s.complete(ctx, status, orderID)
	}

	po, status, err := s.createPaymentOrder(ctx, status, totals.GrandTotal)
	if err != nil {
		return fail(status, err)
	}

	capture, status, err := s.capturePayment(ctx, status, gateway, po)
	if err != nil {
		return fail(status, err)
	}

	status, err = s.verifyPayment(ctx, status, capture)
	if err != nil {
		return fail(status, err)
	}

	req := backend.CreateOrderRequest{
		Customer: customer,
		Cart:     current.Items,
		Total:    totals.GrandTotal,
		Payment: domain.PaymentInfo{
			Method:    "razorpay",
			Status:    "paid",
			OrderID:   capture.OrderID,
			PaymentID: capture.PaymentID,
		},
	}
	orderID, status, err := s.persistOrder(ctx, status, req)
	if err != nil {
		return fail(status, err)
	}

	return s.complete(ctx, status, orderID)
}

func (s *Submitter) createPaymentOrder(ctx context.Context, status domain.SubmissionStatus, amount float64) (*backend.PaymentOrder, domain.SubmissionStatus, error) {
	if !domain.CanTransitionTo(status, domain.SubmissionStatusOrderCreated) {
		return nil, status, IllegalTransitionError
	}
	po, err := s.api.CreatePaymentOrder(ctx, amount)
	if err != nil {
		return nil, status, err
	}
	return po, domain.SubmissionStatusOrderCreated, nil
}

func (s *Submitter) capturePayment(ctx context.Context, status domain.SubmissionStatus, gateway PaymentGateway, po *backend.PaymentOrder) (*PaymentCapture, domain.SubmissionStatus, error) {
	if !domain.CanTransitionTo(status, domain.SubmissionStatusPaymentCaptured) {
		return nil, status, IllegalTransitionError
	}
	if gateway == nil {
		return nil, status, errors.New("no payment gateway for paid order")
	}
	capture, err := gateway.Capture(ctx, po)
	if err != nil {
		return nil, status, err
	}
	return capture, domain.SubmissionStatusPaymentCaptured, nil
}

func (s *Submitter) verifyPayment(ctx context.Context, status domain.SubmissionStatus, capture *PaymentCapture) (domain.SubmissionStatus, error) {
	if !domain.CanTransitionTo(status, domain.SubmissionStatusVerified) {
		return status, IllegalTransitionError
	}
	if err := s.api.VerifyPayment(ctx, capture.OrderID, capture.PaymentID, capture.Signature); err != nil {
		return status, err
	}
	return domain.SubmissionStatusVerified, nil
}

func (s *Submitter) persistOrder(ctx context.Context, status domain.SubmissionStatus, req backend.CreateOrderRequest) (string, domain.SubmissionStatus, error) {
	if !domain.CanTransitionTo(status, domain.SubmissionStatusPersisted) {
		return "", status, IllegalTransitionError
	}
	resp, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		return "", status, err
	}
	return resp.OrderID, domain.SubmissionStatusPersisted, nil
}

func (s *Submitter) complete(ctx context.Context, status domain.SubmissionStatus, orderID string) *SubmissionResult {
	if !domain.CanTransitionTo(status, domain.SubmissionStatusCompleted) {
		return fail(status, IllegalTransitionError)
	}
	// The order is confirmed server-side at this point; a failure to
	// clear the local cart must not look like a failed order.
	if err := s.store.Clear(ctx); err != nil {
		log.Printf("order %s placed but cart clear failed: %v", orderID, err)
	}
	return &SubmissionResult{
		Status:  domain.SubmissionStatusCompleted,
		OrderID: orderID,
	}
}

func fail(from domain.SubmissionStatus, err error) *SubmissionResult {
	log.Printf("order submission failed at %s: %v", from, err)
	return &SubmissionResult{
		Status: domain.SubmissionStatusFailed,
		Err:    err,
	}
}
