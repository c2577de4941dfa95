package cart

import (
	"context"
	"errors"
)

// Storage is the key-value port behind the cart and last-order slots.
// Consumers define this interface, not the storage implementations.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")

// Slot keys. The cart slot holds the JSON cart, the last-order slot the
// most recently placed order.
const (
	CartKey      = "cart"
	LastOrderKey = "lastOrder"
)
