package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/redis"
)

const keyPrefix = "session"

// Store is the session-scoped key-value store the wizard drafts live in.
// Values are JSON; every write refreshes the session TTL. One browser
// session has a single writer, so no locking is needed.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger ectologger.Logger
}

// NewStore creates a session store with the given per-session TTL.
func NewStore(client *redis.Client, ttl time.Duration, logger ectologger.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func storageKey(sessionID, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, sessionID, key)
}

// Get reads the value under key into dest. The second return is false when
// the key is not present in the session.
func (s *Store) Get(ctx context.Context, sessionID, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, storageKey(sessionID, key))
	if redis.IsNil(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session key %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("session key %q holds malformed data: %w", key, err)
	}

	return true, nil
}

// Save writes value under key, refreshing the session TTL.
func (s *Store) Save(ctx context.Context, sessionID, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session key %q: %w", key, err)
	}

	if err := s.client.Set(ctx, storageKey(sessionID, key), string(encoded), s.ttl); err != nil {
		return fmt.Errorf("failed to write session key %q: %w", key, err)
	}

	return nil
}

// Clear removes the given keys from the session. Missing keys are not an
// error.
func (s *Store) Clear(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	storageKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		storageKeys = append(storageKeys, storageKey(sessionID, key))
	}

	if err := s.client.Del(ctx, storageKeys...); err != nil {
		return fmt.Errorf("failed to clear session keys: %w", err)
	}

	return nil
}
