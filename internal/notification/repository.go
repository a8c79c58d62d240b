package notification

import (
	"context"
	"errors"
	"log"

	"household-backend/internal/store"
)

// DeviceTokensKey holds the registered FCM tokens.
const DeviceTokensKey = "device_tokens"

// DeviceTokenRepository defines the interface for FCM token operations
type DeviceTokenRepository interface {
	SaveToken(ctx context.Context, token string) error
	Tokens(ctx context.Context) ([]string, error)
	DeleteTokens(ctx context.Context, tokens []string) error
}

type storeTokenRepository struct {
	store store.Store
}

// NewDeviceTokenRepository creates a token repository over a key-value store
func NewDeviceTokenRepository(s store.Store) DeviceTokenRepository {
	return &storeTokenRepository{store: s}
}

func (r *storeTokenRepository) Tokens(ctx context.Context) ([]string, error) {
	var tokens []string
	if _, err := store.GetJSON(ctx, r.store, DeviceTokensKey, &tokens); err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			log.Printf("[FCM] %v, no devices registered", err)
			return nil, nil
		}
		return nil, err
	}
	return tokens, nil
}

// SaveToken adds token once; re-registering is a no-op.
func (r *storeTokenRepository) SaveToken(ctx context.Context, token string) error {
	tokens, err := r.Tokens(ctx)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if t == token {
			return nil
		}
	}
	return store.SetJSON(ctx, r.store, DeviceTokensKey, append(tokens, token))
}

func (r *storeTokenRepository) DeleteTokens(ctx context.Context, remove []string) error {
	if len(remove) == 0 {
		return nil
	}
	drop := make(map[string]struct{}, len(remove))
	for _, t := range remove {
		drop[t] = struct{}{}
	}

	tokens, err := r.Tokens(ctx)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := drop[t]; !ok {
			kept = append(kept, t)
		}
	}
	return store.SetJSON(ctx, r.store, DeviceTokensKey, kept)
}
