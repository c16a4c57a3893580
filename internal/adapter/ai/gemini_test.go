package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/config/configs"
)

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), configs.AI{Model: "gemini-2.0-flash"}, nil, "")
	require.Error(t, err)
}

func TestGeminiGenerate(t *testing.T) {
	var (
		mu      sync.Mutex
		gotPath string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		gotPath, gotBody = r.URL.Path, body
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"strategy\":\"ok\"}"}]}}]}`))
	}))
	t.Cleanup(server.Close)

	g, err := NewGemini(context.Background(), configs.AI{GeminiAPIKey: "key", Model: "gemini-2.0-flash"}, server.Client(), server.URL)
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "plan a campaign")
	require.NoError(t, err)
	assert.Equal(t, `{"strategy":"ok"}`, text)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-2.0-flash:generateContent"), gotPath)

	cfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1024, cfg["maxOutputTokens"])
}

func TestGeminiGenerateError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	t.Cleanup(server.Close)

	g, err := NewGemini(context.Background(), configs.AI{GeminiAPIKey: "key", Model: "gemini-2.0-flash"}, server.Client(), server.URL)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "x")
	require.Error(t, err)
}
