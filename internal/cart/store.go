package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mudit2208/mehta-masala-storefront/internal/catalog"
	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

// Store owns the persisted cart. Every operation re-reads the slot,
// mutates and writes back, so callers that resume after their own I/O
// always see the current cart.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Get returns the persisted cart, empty when the slot does not exist yet.
func (s *Store) Get(ctx context.Context) (*domain.Cart, error) {
	data, err := s.storage.Get(ctx, CartKey)
	if errors.Is(err, ErrNotFound) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// A corrupt slot behaves like an empty cart rather than
		// wedging every cart operation.
		log.Printf("cart slot unreadable, starting empty: %v", err)
		return &domain.Cart{}, nil
	}
	return &cart, nil
}

// Add merges the product into the cart. An existing (slug, weight) line
// gets its quantity incremented and its unit price refreshed to the
// freshly resolved one; last resolved price wins. Otherwise a new line
// is appended.
func (s *Store) Add(ctx context.Context, product *domain.Product, weight, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	unitPrice := catalog.UnitPrice(product, weight)

	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if i := cart.Find(product.Slug, weight); i >= 0 {
		cart.Items[i].Quantity += quantity
		cart.Items[i].Price = unitPrice
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			Slug:     product.Slug,
			Name:     product.Name,
			Price:    unitPrice,
			Weight:   weight,
			Quantity: quantity,
			Image:    product.Image,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ChangeQuantity adds delta to the matching line's quantity. A resulting
// quantity of zero or less removes the line in the same step. Missing
// lines are a no-op.
func (s *Store) ChangeQuantity(ctx context.Context, slug string, weight, delta int) (*domain.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	i := cart.Find(slug, weight)
	if i < 0 {
		return cart, nil
	}

	cart.Items[i].Quantity += delta
	if cart.Items[i].Quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the matching line unconditionally; no-op when absent.
func (s *Store) Remove(ctx context.Context, slug string, weight int) (*domain.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	i := cart.Find(slug, weight)
	if i < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, CartKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Store) Total(ctx context.Context) (float64, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func (s *Store) ItemCount(ctx context.Context) (int, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

func (s *Store) save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.storage.Set(ctx, CartKey, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
