package rediscache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"session-manager/app/config"
)

const (
	keyPrefix = "session:"
	tokenKey  = keyPrefix + "token"
)

// CredentialStore is a Redis-backed local persistence surface for cached
// session credentials. It implements port.CredentialStore; all usage is
// best-effort.
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCredentialStore creates a Redis-backed credential store
func NewCredentialStore(cfg *config.Config, logger *slog.Logger) *CredentialStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &CredentialStore{
		client: client,
		ttl:    cfg.SessionTTL,
		logger: logger.With("component", "credential_store"),
	}
}

// Name identifies this store in cleanup logs
func (s *CredentialStore) Name() string {
	return "redis"
}

// StoreToken caches the session token
func (s *CredentialStore) StoreToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, tokenKey, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session token: %w", err)
	}
	return nil
}

// Token returns the cached session token, or empty when none is cached
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached session token: %w", err)
	}
	return value, nil
}

// Clear removes every cached authentication artifact, not just the token.
// The schema here is deliberately "clear everything under the prefix".
func (s *CredentialStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached credentials: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear cached credentials: %w", err)
	}

	s.logger.Info("cached credentials cleared", "keys", len(keys))
	return nil
}

// HealthCheck checks if Redis is reachable
func (s *CredentialStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.client.Ping(ctx).Err()
}

// Close closes the underlying Redis client
func (s *CredentialStore) Close() error {
	return s.client.Close()
}
