package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService implements smart AI provider routing with fallback
// - Translation and chat: Gemini first (better quality), fallback to Ollama
// - Image generation: Gemini only
type FallbackService struct {
	gemini Gateway
	ollama Gateway
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini Gateway, ollama Gateway) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	return containsAny(err.Error(), []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"EOF",
	})
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	return containsAny(err.Error(), []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
		"RESOURCE_EXHAUSTED",
	})
}

func containsAny(s string, indicators []string) bool {
	s = strings.ToLower(s)
	for _, indicator := range indicators {
		if strings.Contains(s, strings.ToLower(indicator)) {
			return true
		}
	}
	return false
}

func reason(err error) string {
	switch {
	case isQuotaError(err):
		return "quota exhausted"
	case isConnectionError(err):
		return "connection failed"
	default:
		return "error"
	}
}

// Translate tries Gemini first, falls back to Ollama
func (f *FallbackService) Translate(ctx context.Context, text string) (Translation, error) {
	var lastErr error
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for translation...")
		result, err := f.gemini.Translate(ctx, text)
		if err == nil {
			log.Println("[AI] Gemini translation successful")
			return result, nil
		}
		log.Printf("[AI] Gemini %s: %v, falling back to Ollama", reason(err), err)
		lastErr = err
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for translation...")
		result, err := f.ollama.Translate(ctx, text)
		if err == nil {
			log.Println("[AI] Ollama translation successful")
			return result, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no AI provider available")
	}
	return Translation{}, &TranslationError{Provider: "fallback", Err: lastErr}
}

// Chat tries Gemini first, falls back to Ollama
func (f *FallbackService) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	var lastErr error
	if f.gemini != nil {
		reply, err := f.gemini.Chat(ctx, history, message)
		if err == nil {
			return reply, nil
		}
		log.Printf("[AI] Gemini chat %s: %v, falling back to Ollama", reason(err), err)
		lastErr = err
	}

	if f.ollama != nil {
		reply, err := f.ollama.Chat(ctx, history, message)
		if err == nil {
			return reply, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no AI provider available")
	}
	return "", &ChatError{Provider: "fallback", Err: lastErr}
}

// GenerateImage uses Gemini only
func (f *FallbackService) GenerateImage(ctx context.Context, prompt string, size ImageSize) (*Image, error) {
	if f.gemini == nil {
		return nil, &ImageGenError{Provider: "fallback", Err: ErrImageUnsupported}
	}
	return f.gemini.GenerateImage(ctx, prompt, size)
}
