package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt marks a persisted value that could not be decoded.
var ErrCorrupt = errors.New("store: corrupt value")

// Store is whole-value get/set over string keys. It is durable on one device
// and gives no transactional guarantee beyond read/replace of a single key.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
}

// GetJSON decodes the value at key into out. It reports false when the key is
// absent. A value that fails to decode yields an error wrapping ErrCorrupt.
func GetJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(body)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
