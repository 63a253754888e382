package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/order"
)

// Manager owns a session's cart and is its single persistence boundary:
// every mutation writes the full list back to the store, then fires the
// change callback.
type Manager struct {
	store    Store
	session  string
	cart     *Cart
	logger   *zap.Logger
	onChange func()
}

// NewManager loads the session's persisted cart. A session with no stored
// cart starts empty.
func NewManager(ctx context.Context, store Store, sessionID string, logger *zap.Logger) (*Manager, error) {
	items, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", sessionID, err)
	}
	return &Manager{
		store:   store,
		session: sessionID,
		cart:    New(items),
		logger:  logger,
	}, nil
}

// OnChange registers a callback fired after every persisted mutation.
func (m *Manager) OnChange(fn func()) {
	m.onChange = fn
}

func (m *Manager) Len() int { return m.cart.Len() }

func (m *Manager) Items() []order.CartItem { return m.cart.Items() }

func (m *Manager) Total() int64 { return m.cart.Total() }

func (m *Manager) AddItem(ctx context.Context, item order.CartItem) error {
	m.cart.Add(item)
	return m.persist(ctx)
}

func (m *Manager) RemoveItem(ctx context.Context, id string) error {
	if !m.cart.RemoveByID(id) {
		m.logger.Warn("remove ignored, no such item", zap.String("id", id))
		return nil
	}
	return m.persist(ctx)
}

func (m *Manager) RemoveItemAt(ctx context.Context, index int) error {
	if !m.cart.RemoveAt(index) {
		m.logger.Warn("remove ignored, index out of range", zap.Int("index", index))
		return nil
	}
	return m.persist(ctx)
}

func (m *Manager) ChangeQuantity(ctx context.Context, id string, delta int) error {
	if !m.cart.ChangeQuantity(id, delta) {
		m.logger.Warn("quantity change ignored, no such item", zap.String("id", id))
		return nil
	}
	return m.persist(ctx)
}

// Clear empties the cart and persists the empty state. Called exactly once
// after a successful order submission, or on explicit user action.
func (m *Manager) Clear(ctx context.Context) error {
	m.cart.Clear()
	return m.persist(ctx)
}

func (m *Manager) persist(ctx context.Context) error {
	if err := m.store.Save(ctx, m.session, m.cart.Items()); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	if m.onChange != nil {
		m.onChange()
	}
	return nil
}
