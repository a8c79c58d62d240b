package ai

import (
	"context"
	"fmt"

	"household-backend/pkg/gemini"
)

// DynamicConfig holds AI provider configuration. Ollama settings are read
// through getters so they can change at runtime.
type DynamicConfig struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	Gemini gemini.Options

	// Ollama config
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewGateway creates a Gateway based on the config
// This is the factory function - switch AI provider by changing cfg.Provider
func NewGateway(ctx context.Context, cfg DynamicConfig) (Gateway, error) {
	ollama := NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel)

	switch cfg.Provider {
	case ProviderGemini:
		svc, err := gemini.NewService(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		return NewGeminiGateway(svc), nil

	case ProviderOllama:
		return ollama, nil

	case ProviderAuto, "":
		// Gemini first when a key is available, Ollama as the fallback
		if cfg.Gemini.APIKey == "" {
			return ollama, nil
		}
		svc, err := gemini.NewService(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		return NewFallbackService(NewGeminiGateway(svc), ollama), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
