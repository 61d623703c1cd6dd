package orders

import (
	"context"
	"sync"

	"github.com/stitchandstory/shop-backend/internal/cart"
)

// StatusConfirmed is the only status this simulation ever produces.
const StatusConfirmed = "confirmed"

// CheckoutUser is the caller-supplied user, stored verbatim.
type CheckoutUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderCart wraps the normalized items of an order. Any metadata on the
// submitted cart (such as a pre-existing cart id) is dropped.
type OrderCart struct {
	Items []cart.Item `json:"items"`
}

// Order is a confirmed checkout result.
type Order struct {
	ID        string       `json:"id"`
	CreatedAt string       `json:"createdAt"`
	User      CheckoutUser `json:"user"`
	Cart      OrderCart    `json:"cart"`
	Notes     *string      `json:"notes"`
	Status    string       `json:"status"`
}

// Store is an append-only collection of confirmed orders.
type Store interface {
	Append(ctx context.Context, order Order) error
	ListAll(ctx context.Context) ([]Order, error)
}

type memoryStore struct {
	mu     sync.Mutex
	orders []Order
}

// NewMemoryStore returns a process-scoped in-memory order store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Append(_ context.Context, order Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *memoryStore) ListAll(_ context.Context) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}
