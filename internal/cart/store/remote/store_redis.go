// Package remote persists per-user carts server-side. The redis-backed store
// is the production implementation; the in-memory one backs tests and
// single-process deployments.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"codedrip/internal/cart"
	id "codedrip/pkg/domain"
)

// RedisStore keeps one JSON-encoded item list per user under
// cart:user:<id>. Saves are full-snapshot overwrites; there is no version
// check, so the last completed write wins.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(userID id.UserID) string {
	return "cart:user:" + userID.String()
}

func (s *RedisStore) Fetch(ctx context.Context, userID id.UserID) ([]cart.LineItem, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []cart.LineItem{}, nil
		}
		return nil, fmt.Errorf("fetch user cart: %w", err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode user cart: %w", err)
	}
	if items == nil {
		items = []cart.LineItem{}
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, userID id.UserID, items []cart.LineItem) error {
	if items == nil {
		items = []cart.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode user cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save user cart: %w", err)
	}
	return nil
}
