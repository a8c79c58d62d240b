package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrImageUnsupported is returned by providers that cannot draw.
var ErrImageUnsupported = errors.New("image generation is not supported by this provider")

// OllamaService implements Gateway using an Ollama local LLM
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
	client     *http.Client
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return NewOllamaServiceWithGetters(
		func() string { return baseURL },
		func() string { return model },
	)
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic getters
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	if getBaseURL == nil {
		getBaseURL = func() string { return "http://localhost:11434" }
	}
	if getModel == nil {
		getModel = func() string { return "llama3" }
	}
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
		client:     &http.Client{},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string                 `json:"model"`
	Messages []ollamaMessage        `json:"messages"`
	Stream   bool                   `json:"stream"`
	Format   string                 `json:"format,omitempty"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// chat posts to /api/chat and returns the assistant's content.
func (o *OllamaService) chat(ctx context.Context, payload ollamaChatRequest) (string, error) {
	url := strings.TrimSuffix(o.getBaseURL(), "/") + "/api/chat"

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result ollamaChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Message.Content, nil
}

// Translate implements Gateway
func (o *OllamaService) Translate(ctx context.Context, text string) (Translation, error) {
	reply, err := o.chat(ctx, ollamaChatRequest{
		Model:    o.getModel(),
		Messages: []ollamaMessage{{Role: "user", Content: TranslatePrompt(text)}},
		Format:   "json",
		Options:  map[string]interface{}{"temperature": 0.2},
	})
	if err != nil {
		return Translation{}, &TranslationError{Provider: "ollama", Err: err}
	}
	t, err := ParseTranslation(reply)
	if err != nil {
		return Translation{}, &TranslationError{Provider: "ollama", Err: err}
	}
	return t, nil
}

// Chat implements Gateway
func (o *OllamaService) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	messages := []ollamaMessage{{Role: "system", Content: ChatSystemInstruction}}
	for _, turn := range history {
		role := "user"
		if turn.Role == RoleModel {
			role = "assistant"
		}
		messages = append(messages, ollamaMessage{Role: role, Content: turn.Text})
	}
	messages = append(messages, ollamaMessage{Role: "user", Content: message})

	reply, err := o.chat(ctx, ollamaChatRequest{
		Model:    o.getModel(),
		Messages: messages,
		Options:  map[string]interface{}{"temperature": 0.7},
	})
	if err != nil {
		return "", &ChatError{Provider: "ollama", Err: err}
	}
	return strings.TrimSpace(reply), nil
}

// GenerateImage implements Gateway. Ollama text models cannot draw.
func (o *OllamaService) GenerateImage(ctx context.Context, prompt string, size ImageSize) (*Image, error) {
	return nil, &ImageGenError{Provider: "ollama", Err: ErrImageUnsupported}
}

// Ping checks that the server at baseURL answers /api/tags.
func Ping(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", strings.TrimSuffix(baseURL, "/")+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}
