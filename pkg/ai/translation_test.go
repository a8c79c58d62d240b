package ai

import (
	"context"
	"testing"

	"household-backend/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTranslation(t *testing.T) {
	got, err := ParseTranslation("```json\n{\"zh\":\"a\",\"en\":\"b\",\"id_lang\":\"c\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, Translation{Zh: "a", En: "b", ID: "c"}, got)

	got, err = ParseTranslation(`Here: {"en":"only english"} done`)
	require.NoError(t, err)
	assert.Equal(t, Translation{En: "only english"}, got)

	_, err = ParseTranslation("nothing")
	assert.Error(t, err)
	_, err = ParseTranslation("{broken}")
	assert.Error(t, err)
}

func TestWithFallback(t *testing.T) {
	got := Translation{En: "Buy milk"}.WithFallback("beli susu")
	assert.Equal(t, Translation{Zh: "beli susu", En: "Buy milk", ID: "beli susu"}, got)
}

func TestProviderSize(t *testing.T) {
	for size, want := range map[ImageSize]string{ImageSmall: "1K", ImageMedium: "2K", ImageLarge: "4K"} {
		got, err := size.ProviderSize()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ImageSize("xl").ProviderSize()
	assert.Error(t, err)
}

func TestNewGatewayProviders(t *testing.T) {
	ctx := context.Background()

	gw, err := NewGateway(ctx, DynamicConfig{Provider: ProviderOllama})
	require.NoError(t, err)
	assert.IsType(t, &OllamaService{}, gw)

	gw, err = NewGateway(ctx, DynamicConfig{Provider: ProviderAuto})
	require.NoError(t, err)
	assert.IsType(t, &OllamaService{}, gw)

	_, err = NewGateway(ctx, DynamicConfig{Provider: ProviderGemini, Gemini: gemini.Options{}})
	assert.Error(t, err)

	_, err = NewGateway(ctx, DynamicConfig{Provider: "openai"})
	assert.Error(t, err)
}
