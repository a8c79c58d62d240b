package ai

import (
	"context"
	"errors"
	"testing"

	"household-backend/pkg/gemini"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeminiClient struct {
	json      string
	reply     string
	image     *gemini.InlineImage
	err       error
	history   []gemini.Message
	system    string
	imageSize string
	aspect    string
	schema    *genai.Schema
}

func (f *fakeGeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.schema = schema
	return f.json, f.err
}

func (f *fakeGeminiClient) Chat(ctx context.Context, systemInstruction string, history []gemini.Message, message string) (string, error) {
	f.system = systemInstruction
	f.history = history
	return f.reply, f.err
}

func (f *fakeGeminiClient) GenerateImage(ctx context.Context, prompt, imageSize, aspectRatio string) (*gemini.InlineImage, error) {
	f.imageSize = imageSize
	f.aspect = aspectRatio
	return f.image, f.err
}

func TestGeminiGatewayTranslate(t *testing.T) {
	client := &fakeGeminiClient{json: `{"zh":"買牛奶","en":"Buy milk","id_lang":"Beli susu"}`}
	gw := NewGeminiGateway(client)

	got, err := gw.Translate(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, Translation{Zh: "買牛奶", En: "Buy milk", ID: "Beli susu"}, got)
	assert.Equal(t, []string{"zh", "en", "id_lang"}, client.schema.Required)
}

func TestGeminiGatewayTranslateError(t *testing.T) {
	gw := NewGeminiGateway(&fakeGeminiClient{err: errors.New("quota")})

	_, err := gw.Translate(context.Background(), "buy milk")
	var terr *TranslationError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "gemini", terr.Provider)

	gw = NewGeminiGateway(&fakeGeminiClient{json: "not json"})
	_, err = gw.Translate(context.Background(), "buy milk")
	assert.True(t, errors.As(err, &terr))
}

func TestGeminiGatewayChat(t *testing.T) {
	client := &fakeGeminiClient{reply: "Use vinegar."}
	gw := NewGeminiGateway(client)

	reply, err := gw.Chat(context.Background(), []Turn{{Role: RoleUser, Text: "hi"}, {Role: RoleModel, Text: "hello"}}, "stains?")
	require.NoError(t, err)
	assert.Equal(t, "Use vinegar.", reply)
	assert.Equal(t, ChatSystemInstruction, client.system)
	assert.Equal(t, []gemini.Message{{Role: "user", Text: "hi"}, {Role: "model", Text: "hello"}}, client.history)
}

func TestGeminiGatewayImage(t *testing.T) {
	client := &fakeGeminiClient{image: &gemini.InlineImage{MimeType: "image/png", Data: "QUJD"}}
	gw := NewGeminiGateway(client)

	img, err := gw.GenerateImage(context.Background(), "a kitchen", ImageLarge)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QUJD", img.DataURL())
	assert.Equal(t, "4K", client.imageSize)
	assert.Equal(t, "1:1", client.aspect)

	client.image = nil
	img, err = gw.GenerateImage(context.Background(), "a kitchen", ImageSmall)
	require.NoError(t, err)
	assert.Nil(t, img)

	_, err = gw.GenerateImage(context.Background(), "a kitchen", "huge")
	var ierr *ImageGenError
	assert.True(t, errors.As(err, &ierr))
}
