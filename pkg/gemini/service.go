package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Options configures a Service.
type Options struct {
	APIKey         string
	BaseURL        string // REST endpoint used for image generation
	ChatModel      string
	TranslateModel string
	ImageModel     string
	HTTPClient     *http.Client
}

// Message is one prior chat turn. Role is "user" or "model".
type Message struct {
	Role string
	Text string
}

type Service struct {
	client         *genai.Client
	apiKey         string
	baseURL        string
	chatModel      string
	translateModel string
	imageModel     string
	httpClient     *http.Client
}

func NewService(ctx context.Context, opts Options) (*Service, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}

	return &Service{
		client:         client,
		apiKey:         opts.APIKey,
		baseURL:        baseURL,
		chatModel:      opts.ChatModel,
		translateModel: opts.TranslateModel,
		imageModel:     opts.ImageModel,
		httpClient:     httpClient,
	}, nil
}

// Close releases the SDK client.
func (g *Service) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// GenerateJSON asks the translate model for a JSON reply matching schema.
func (g *Service) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	model := g.client.GenerativeModel(g.translateModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return FirstText(resp)
}

// Chat sends message after replaying history to the chat model.
func (g *Service) Chat(ctx context.Context, systemInstruction string, history []Message, message string) (string, error) {
	model := g.client.GenerativeModel(g.chatModel)
	if systemInstruction != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	}

	session := model.StartChat()
	session.History = ToContents(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}
	return FirstText(resp)
}

// ToContents converts chat turns to SDK history.
func ToContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		if m.Text == "" {
			continue
		}
		role := m.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Text)}})
	}
	return contents
}

// FirstText joins the text parts of the first candidate.
func FirstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text returned")
	}
	return sb.String(), nil
}
