package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
	"github.com/mudit2208/mehta-masala-storefront/internal/cart"
	"github.com/mudit2208/mehta-masala-storefront/internal/checkout"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

// Submitter validates the checkout form and turns the current cart into
// an order, either persisted locally (offline) or submitted to the
// remote backend (online). The cart is cleared only after the order is
// confirmed, so any failure leaves it intact for a retry.
type Submitter struct {
	store   *cart.Store
	storage cart.Storage // last-order slot
	api     backend.OrderAPI
	opts    checkout.Options

	now   func() time.Time
	newID func() string
}

func NewSubmitter(store *cart.Store, storage cart.Storage, api backend.OrderAPI, opts checkout.Options) *Submitter {
	return &Submitter{
		store:   store,
		storage: storage,
		api:     api,
		opts:    opts,
		now:     time.Now,
		newID:   newOrderID,
	}
}

// newOrderID generates "ORD" plus five random digits. Not unique in any
// cryptographic sense; collisions are accepted for this order volume.
func newOrderID() string {
	return fmt.Sprintf("ORD%d", rand.Intn(90000)+10000)
}

// PlaceOffline validates, snapshots the cart into a locally persisted
// order and clears the cart. The cart is re-read here rather than taken
// from the caller: it may have changed across the caller's own awaited
// I/O.
func (s *Submitter) PlaceOffline(ctx context.Context, customer domain.Customer) (*domain.Order, error) {
	if err := ValidateCustomer(customer); err != nil {
		return nil, err
	}

	current, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := checkout.ComputeTotals(current.Items, s.opts)
	order := s.buildOrder(customer, current.Items, totals.GrandTotal, domain.PaymentInfo{
		Method: "offline",
		Status: "unpaid",
	})

	if err := s.saveLastOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := s.store.Clear(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// LastOrder returns the most recently placed local order, or nil when
// none has been placed on this device.
func (s *Submitter) LastOrder(ctx context.Context) (*domain.Order, error) {
	data, err := s.storage.Get(ctx, cart.LastOrderKey)
	if errors.Is(err, cart.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last order: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("unmarshal last order: %w", err)
	}
	return &order, nil
}

func (s *Submitter) buildOrder(customer domain.Customer, items []domain.CartItem, total float64, payment domain.PaymentInfo) *domain.Order {
	// Snapshot the lines by value so the order is immune to later cart
	// mutation.
	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	return &domain.Order{
		ID:        s.newID(),
		Customer:  customer,
		Items:     snapshot,
		Total:     total,
		Payment:   payment,
		CreatedAt: s.now(),
	}
}

func (s *Submitter) saveLastOrder(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	if err := s.storage.Set(ctx, cart.LastOrderKey, data); err != nil {
		return fmt.Errorf("save last order: %w", err)
	}
	return nil
}
