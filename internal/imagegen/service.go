package imagegen

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"household-backend/pkg/ai"
)

var ErrEmptyPrompt = errors.New("prompt is required")

// GeneratedImage is the last picture produced in this process.
type GeneratedImage struct {
	MimeType  string       `json:"mime_type"`
	Data      string       `json:"data"`
	DataURL   string       `json:"data_url"`
	Prompt    string       `json:"prompt"`
	Size      ai.ImageSize `json:"size"`
	CreatedAt time.Time    `json:"created_at"`
}

// Generator is the part of ai.Gateway the helper uses.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string, size ai.ImageSize) (*ai.Image, error)
}

// Service remembers the most recent image.
type Service struct {
	generator Generator
	now       func() time.Time

	mu     sync.RWMutex
	latest *GeneratedImage
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator, now: time.Now}
}

// Generate asks for an image. The latest image is replaced only when the
// provider returns one; nil results and errors leave it untouched.
func (s *Service) Generate(ctx context.Context, prompt string, size ai.ImageSize) (*GeneratedImage, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if size == "" {
		size = ai.ImageSmall
	}

	img, err := s.generator.GenerateImage(ctx, prompt, size)
	if err != nil {
		log.Printf("[ImageGen] Generation failed: %v", err)
		return nil, err
	}
	if img == nil {
		log.Printf("[ImageGen] Provider returned no image for %q", prompt)
		return nil, nil
	}

	generated := &GeneratedImage{
		MimeType:  img.MimeType,
		Data:      img.Data,
		DataURL:   img.DataURL(),
		Prompt:    prompt,
		Size:      size,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.latest = generated
	s.mu.Unlock()
	return generated, nil
}

// Latest returns the last generated image, or nil.
func (s *Service) Latest() *GeneratedImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
