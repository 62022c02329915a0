// Package kvstore is the key-value persistence interface for per-profile
// browser state: cart contents, favorites and the selected category. It is
// the server-side analogue of the storefront's local storage.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is the minimal contract the cart and preference code needs:
// get returns ("", false) for a missing key instead of an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// RedisStore implements Store on a Redis client.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a store to the Redis instance at addr.
func NewRedisStore(addr, password string, db int) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: rdb}
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Key layout. One browser profile maps to one id; two tabs of the same
// profile share these keys and the last write wins, exactly like local
// storage.

// CartKey holds the serialized cart line collection.
func CartKey(profileID string) string {
	return fmt.Sprintf("shopping_cart:%s", profileID)
}

// FavoritesKey holds the serialized favorite product-id list.
func FavoritesKey(profileID string) string {
	return fmt.Sprintf("favorites:%s", profileID)
}

// SelectedCategoryKey holds the last selected category.
func SelectedCategoryKey(profileID string) string {
	return fmt.Sprintf("selected-category:%s", profileID)
}
