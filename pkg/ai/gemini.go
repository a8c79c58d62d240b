package ai

import (
	"context"
	"fmt"

	"household-backend/pkg/gemini"

	"github.com/google/generative-ai-go/genai"
)

var translationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"zh":      {Type: genai.TypeString},
		"en":      {Type: genai.TypeString},
		"id_lang": {Type: genai.TypeString},
	},
	Required: []string{"zh", "en", "id_lang"},
}

// geminiClient is the subset of gemini.Service the gateway needs.
type geminiClient interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	Chat(ctx context.Context, systemInstruction string, history []gemini.Message, message string) (string, error)
	GenerateImage(ctx context.Context, prompt, imageSize, aspectRatio string) (*gemini.InlineImage, error)
}

// GeminiGateway implements Gateway on the Gemini API
type GeminiGateway struct {
	svc geminiClient
}

// NewGeminiGateway wraps a Gemini client
func NewGeminiGateway(svc geminiClient) *GeminiGateway {
	return &GeminiGateway{svc: svc}
}

func (g *GeminiGateway) Translate(ctx context.Context, text string) (Translation, error) {
	reply, err := g.svc.GenerateJSON(ctx, TranslatePrompt(text), translationSchema)
	if err != nil {
		return Translation{}, &TranslationError{Provider: "gemini", Err: err}
	}
	t, err := ParseTranslation(reply)
	if err != nil {
		return Translation{}, &TranslationError{Provider: "gemini", Err: err}
	}
	return t, nil
}

func (g *GeminiGateway) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	msgs := make([]gemini.Message, 0, len(history))
	for _, turn := range history {
		msgs = append(msgs, gemini.Message{Role: string(turn.Role), Text: turn.Text})
	}
	reply, err := g.svc.Chat(ctx, ChatSystemInstruction, msgs, message)
	if err != nil {
		return "", &ChatError{Provider: "gemini", Err: err}
	}
	return reply, nil
}

func (g *GeminiGateway) GenerateImage(ctx context.Context, prompt string, size ImageSize) (*Image, error) {
	providerSize, err := size.ProviderSize()
	if err != nil {
		return nil, &ImageGenError{Provider: "gemini", Err: err}
	}
	img, err := g.svc.GenerateImage(ctx, prompt, providerSize, "1:1")
	if err != nil {
		return nil, &ImageGenError{Provider: "gemini", Err: fmt.Errorf("generate %s image: %w", providerSize, err)}
	}
	if img == nil {
		return nil, nil
	}
	return &Image{MimeType: img.MimeType, Data: img.Data}, nil
}
