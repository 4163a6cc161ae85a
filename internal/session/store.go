// internal/session/store.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store persists guest session tags per browser session. The tag is an
// opaque string generated once per unauthenticated session and used as the
// cart-ownership key against the backend until login; it is deleted exactly
// once after a successful merge.
type Store interface {
	// GuestID returns the guest tag for the client key, or "" if none exists
	GuestID(ctx context.Context, clientKey string) (string, error)
	// EnsureGuestID returns the existing guest tag or creates one
	EnsureGuestID(ctx context.Context, clientKey string) (string, error)
	// ClearGuestID deletes the guest tag. Idempotent.
	ClearGuestID(ctx context.Context, clientKey string) error
}

// RedisStore keeps guest tags in Redis with a TTL, keyed by the browser
// session cookie value.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func guestKey(clientKey string) string {
	return fmt.Sprintf("session:guest:%s", clientKey)
}

// GuestID returns the guest tag for the client key, or "" if none exists
func (s *RedisStore) GuestID(ctx context.Context, clientKey string) (string, error) {
	tag, err := s.client.Get(ctx, guestKey(clientKey)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read guest session: %w", err)
	}
	return tag, nil
}

// EnsureGuestID returns the existing guest tag or creates one
func (s *RedisStore) EnsureGuestID(ctx context.Context, clientKey string) (string, error) {
	tag, err := s.GuestID(ctx, clientKey)
	if err != nil {
		return "", err
	}
	if tag != "" {
		// Refresh the TTL so an active guest session does not expire mid-shop
		s.client.Expire(ctx, guestKey(clientKey), s.ttl)
		return tag, nil
	}

	tag = "guest-" + uuid.NewString()
	if err := s.client.Set(ctx, guestKey(clientKey), tag, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store guest session: %w", err)
	}
	return tag, nil
}

// ClearGuestID deletes the guest tag. Idempotent.
func (s *RedisStore) ClearGuestID(ctx context.Context, clientKey string) error {
	if err := s.client.Del(ctx, guestKey(clientKey)).Err(); err != nil {
		return fmt.Errorf("failed to clear guest session: %w", err)
	}
	return nil
}
