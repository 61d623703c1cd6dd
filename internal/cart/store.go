package cart

import (
	"context"
	"sync"
)

// SavedCart is a stored, normalized cart submission.
type SavedCart struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Items     []Item `json:"items"`
}

// Store is an append-only collection of saved carts. Records are never
// mutated or removed.
type Store interface {
	Append(ctx context.Context, record SavedCart) error
	ListAll(ctx context.Context) ([]SavedCart, error)
}

type memoryStore struct {
	mu    sync.Mutex
	carts []SavedCart
}

// NewMemoryStore returns a process-scoped in-memory cart store. Appends
// are serialized so insertion order is preserved.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Append(_ context.Context, record SavedCart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts = append(s.carts, record)
	return nil
}

func (s *memoryStore) ListAll(_ context.Context) ([]SavedCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SavedCart, len(s.carts))
	copy(out, s.carts)
	return out, nil
}
