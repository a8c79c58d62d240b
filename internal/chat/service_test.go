package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"household-backend/pkg/ai"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatter struct {
	reply   string
	err     error
	history []ai.Turn
	message string
}

func (f *fakeChatter) Chat(ctx context.Context, history []ai.Turn, message string) (string, error) {
	f.history = history
	f.message = message
	return f.reply, f.err
}

func TestSendAppendsUserThenReply(t *testing.T) {
	chatter := &fakeChatter{reply: "Soak it in cold water."}
	svc := NewService(chatter)
	id := svc.Start()

	reply, msgs, err := svc.Send(context.Background(), id, "red wine stain?")
	require.NoError(t, err)
	assert.Equal(t, ai.RoleModel, reply.Role)
	assert.Equal(t, "Soak it in cold water.", reply.Text)
	require.Len(t, msgs, 2)
	assert.Equal(t, ai.RoleUser, msgs[0].Role)
	assert.Equal(t, "red wine stain?", msgs[0].Text)
	assert.Empty(t, chatter.history)

	chatter.reply = "About 30 minutes."
	_, msgs, err = svc.Send(context.Background(), id, "how long?")
	require.NoError(t, err)
	assert.Len(t, msgs, 4)
	assert.Equal(t, []ai.Turn{
		{Role: ai.RoleUser, Text: "red wine stain?"},
		{Role: ai.RoleModel, Text: "Soak it in cold water."},
	}, chatter.history)
	assert.Equal(t, "how long?", chatter.message)
}

func TestSendFallbackOnChatError(t *testing.T) {
	svc := NewService(&fakeChatter{err: &ai.ChatError{Provider: "gemini", Err: errors.New("offline")}})
	id := svc.Start()

	reply, msgs, err := svc.Send(context.Background(), id, "hello")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Text)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, FallbackReply, msgs[1].Text)
}

func TestSendValidation(t *testing.T) {
	svc := NewService(&fakeChatter{reply: "x"})

	_, _, err := svc.Send(context.Background(), "missing", "hi")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	id := svc.Start()
	_, _, err = svc.Send(context.Background(), id, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	msgs, err := svc.Messages(id)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := NewService(&fakeChatter{reply: "ok"})
	a, b := svc.Start(), svc.Start()
	assert.NotEqual(t, a, b)

	_, _, err := svc.Send(context.Background(), a, "one")
	require.NoError(t, err)

	msgs, err := svc.Messages(b)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestHandlerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(&fakeChatter{reply: "Hi there"}))
	r := gin.New()
	r.POST("/chat/sessions", h.StartSession)
	r.GET("/chat/sessions/:id/messages", h.GetMessages)
	r.POST("/chat/sessions/:id/messages", h.SendMessage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat/sessions", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	req := httptest.NewRequest(http.MethodPost, "/chat/sessions/"+started.SessionID+"/messages", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/sessions/"+started.SessionID+"/messages", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Messages []Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "Hi there", got.Messages[1].Text)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/sessions/nope/messages", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
