package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"household-backend/internal/dailystatus"
	"household-backend/internal/store"
	"household-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeOllama(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			_, _ = w.Write([]byte(`{"models":[]}`))
		case "/api/chat":
			var req struct {
				Format string `json:"format"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			content := "Try baking soda."
			if req.Format == "json" {
				content = `{"zh":"買牛奶","en":"Buy milk","id_lang":"Beli susu"}`
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"message": map[string]string{"role": "assistant", "content": content},
				"done":    true,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupServer(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ollama := fakeOllama(t)
	cfg := &config.Config{
		GinMode:         gin.TestMode,
		AIProvider:      "ollama",
		OllamaBaseURL:   ollama.URL,
		OllamaModel:     "llama3",
		AdminPIN:        "012295",
		AdminSessionTTL: time.Hour,
	}
	kv := store.NewMemoryStore()
	clock := dailystatus.ClockFunc(func() time.Time {
		return time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
	})

	h, err := NewHandler(context.Background(), cfg, kv, clock, nil)
	require.NoError(t, err)
	return h.Router(), kv
}

func call(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func unlock(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := call(r, http.MethodPost, "/api/admin/unlock", `{"pin":"012295"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	return session.Token
}

func TestHealthAndClock(t *testing.T) {
	r, _ := setupServer(t)

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/health", "", "").Code)

	w := call(r, http.MethodGet, "/api/clock", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var clock map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clock))
	assert.Equal(t, "2026-10-16", clock["date_key"])
	assert.Equal(t, "afternoon", clock["time_of_day"])
}

func TestLaundryFlowPersistsTodayKey(t *testing.T) {
	r, kv := setupServer(t)

	w := call(r, http.MethodPut, "/api/tasks/t3/completion", `{"completed":true}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	raw, ok, err := kv.Get(context.Background(), "daily_status_2026-10-16")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"t3":true}`, raw)

	assert.Equal(t, http.StatusNotFound, call(r, http.MethodPost, "/api/tasks/t9/toggle", "", "").Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := setupServer(t)

	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPost, "/api/admin/special-tasks", `{"instruction":"buy milk"}`, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPost, "/api/admin/unlock", `{"pin":"000000"}`, "").Code)

	token := unlock(t, r)
	w := call(r, http.MethodPost, "/api/admin/special-tasks", `{"instruction":"buy milk"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Beli susu")

	w = call(r, http.MethodGet, "/api/special-tasks", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "買牛奶")
}

func TestChatThroughOllama(t *testing.T) {
	r, _ := setupServer(t)

	w := call(r, http.MethodPost, "/api/chat/sessions", "", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	w = call(r, http.MethodPost, "/api/chat/sessions/"+started.SessionID+"/messages", `{"text":"coffee stain?"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Try baking soda.")
}

func TestImageUnsupportedWithOllama(t *testing.T) {
	r, _ := setupServer(t)

	w := call(r, http.MethodPost, "/api/images", `{"prompt":"clean kitchen","size":"small"}`, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/api/images/latest", "", "").Code)
}

func TestOllamaSettings(t *testing.T) {
	r, _ := setupServer(t)

	w := call(r, http.MethodPost, "/api/settings/ollama/test", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodPut, "/api/settings/ollama", `{"ollama_base_url":"http://127.0.0.1:1","ollama_model":"mistral"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodGet, "/api/settings/ollama", "", "")
	assert.JSONEq(t, `{"ollama_base_url":"http://127.0.0.1:1","ollama_model":"mistral"}`, w.Body.String())

	w = call(r, http.MethodPost, "/api/settings/ollama/test", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Chat now reaches the unreachable server and falls back to the apology.
	w = call(r, http.MethodPost, "/api/chat/sessions", "", "")
	var started struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	w = call(r, http.MethodPost, "/api/chat/sessions/"+started.SessionID+"/messages", `{"text":"hi"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sorry, I couldn't connect to the AI.")
}

func TestDeviceRegistration(t *testing.T) {
	r, kv := setupServer(t)

	w := call(r, http.MethodPost, "/api/devices", `{"token":"device-1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	raw, ok, err := kv.Get(context.Background(), "device_tokens")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["device-1"]`, raw)
}
