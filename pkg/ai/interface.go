package ai

import (
	"context"
	"fmt"
)

// Translation holds one instruction in the three helper languages.
type Translation struct {
	Zh string `json:"zh"`
	En string `json:"en"`
	ID string `json:"id"`
}

// Role of a chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one prior message sent along with a chat request.
type Turn struct {
	Role Role
	Text string
}

// ImageSize is the requested output resolution.
type ImageSize string

const (
	ImageSmall  ImageSize = "small"
	ImageMedium ImageSize = "medium"
	ImageLarge  ImageSize = "large"
)

// ProviderSize maps the size to the provider's resolution label.
func (s ImageSize) ProviderSize() (string, error) {
	switch s {
	case ImageSmall:
		return "1K", nil
	case ImageMedium:
		return "2K", nil
	case ImageLarge:
		return "4K", nil
	}
	return "", fmt.Errorf("unknown image size %q", s)
}

// Image is a generated picture, base64 encoded.
type Image struct {
	MimeType string
	Data     string
}

// DataURL renders the image as a data: URL.
func (i *Image) DataURL() string {
	return "data:" + i.MimeType + ";base64," + i.Data
}

// Gateway is the interface for the hosted AI features
// Implement this interface to add new AI providers (Gemini, Ollama, etc.)
type Gateway interface {
	Translate(ctx context.Context, text string) (Translation, error)
	Chat(ctx context.Context, history []Turn, message string) (string, error)
	// GenerateImage returns nil without error when the provider sent no image.
	GenerateImage(ctx context.Context, prompt string, size ImageSize) (*Image, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
