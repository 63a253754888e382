package cart

import (
	"context"
	"sync"

	"github.com/alfat81/fto/internal/order"
)

// Store persists one item list per session under a single key, overwriting
// the previous value on every save. The stored format is the untagged
// CartItem list, so readers must tolerate data written by older versions.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]order.CartItem, error)
	Save(ctx context.Context, sessionID string, items []order.CartItem) error
}

// MemoryStore is a process-local Store, used in tests and anywhere a real
// Redis is not worth standing up.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]order.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]order.CartItem)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]order.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]order.CartItem, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return items, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, items []order.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]order.CartItem, len(items))
	copy(saved, items)
	s.carts[sessionID] = saved
	return nil
}
