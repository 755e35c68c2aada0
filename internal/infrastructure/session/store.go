package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token resolves to nothing: never issued,
// expired, or destroyed. Resolve-after-destroy deterministically reports it.
var ErrNoSession = errors.New("no session")

// Store binds opaque tokens to user ids. Tokens carry no embedded user data;
// the client only ever holds the token, via a cookie.
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	// Destroy removes the binding. Destroying an unknown or expired token is
	// not an error.
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps session state in Redis under prefix:token keys with a TTL.
// Nothing is persisted in the relational store; losing Redis invalidates all
// outstanding sessions and forces re-login, which is acceptable behavior.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + ":" + token
}

// newToken returns 32 bytes of crypto-random material, base64 raw-URL encoded.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	// DEL of a missing key is a no-op, which gives idempotency for free.
	return s.client.Del(ctx, s.key(token)).Err()
}

var _ Store = (*RedisStore)(nil)
