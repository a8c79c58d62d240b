package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseTranslation decodes a provider reply into a Translation. Markdown
// fences and text around the JSON object are tolerated; missing fields
// stay empty.
func ParseTranslation(reply string) (Translation, error) {
	text := strings.TrimSpace(reply)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return Translation{}, fmt.Errorf("no JSON object in reply")
	}

	var raw rawTranslation
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return Translation{}, fmt.Errorf("failed to parse translation JSON: %w", err)
	}
	return Translation{Zh: raw.Zh, En: raw.En, ID: raw.IDLang}, nil
}

// WithFallback fills every empty field with the source text.
func (t Translation) WithFallback(source string) Translation {
	if t.Zh == "" {
		t.Zh = source
	}
	if t.En == "" {
		t.En = source
	}
	if t.ID == "" {
		t.ID = source
	}
	return t
}
