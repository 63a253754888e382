package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alfat81/fto/internal/order"
	"github.com/alfat81/fto/pkg/redis"
)

// RedisStore keeps each session's cart as one JSON array under
// cart:<session>, mirroring the storefront's single-key storage layout.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]order.CartItem, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID))
	if err != nil {
		if redis.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var items []order.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, items []order.CartItem) error {
	if items == nil {
		items = []order.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
