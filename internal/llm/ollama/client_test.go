package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeRuntime starts a server standing in for the local runtime. chatStatus
// controls the /api/chat response; /api/generate always succeeds.
func newFakeRuntime(t *testing.T, chatStatus int) (*Client, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		if chatStatus != http.StatusOK {
			w.WriteHeader(chatStatus)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "chat endpoint unavailable"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":   "llama3.1",
			"message": map[string]string{"role": "assistant", "content": `{"source":"chat"}`},
			"done":    true,
		})
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3.1",
			"response": `{"source":"generate"}`,
			"done":     true,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "llama3.1")
	require.NoError(t, err)
	return client, srv
}

func TestCompleteJSONViaChat(t *testing.T) {
	t.Parallel()
	client, _ := newFakeRuntime(t, http.StatusOK)

	raw, err := client.CompleteJSON(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"source":"chat"}`, raw)
}

func TestCompleteJSONFallsBackToGenerate(t *testing.T) {
	t.Parallel()
	client, _ := newFakeRuntime(t, http.StatusNotFound)

	raw, err := client.CompleteJSON(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"source":"generate"}`, raw)
}

func TestCompleteJSONChatServerError(t *testing.T) {
	t.Parallel()
	client, _ := newFakeRuntime(t, http.StatusInternalServerError)

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	require.Error(t, err)

	var provErr *llm.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, llm.NameOllama, provErr.Provider)
	assert.Equal(t, http.StatusInternalServerError, provErr.StatusCode)
}

func TestCompleteJSONConnectionRefused(t *testing.T) {
	t.Parallel()
	client, srv := newFakeRuntime(t, http.StatusOK)
	srv.Close()

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	require.Error(t, err)

	var provErr *llm.ProviderError
	assert.ErrorAs(t, err, &provErr)
}

func TestParseHost(t *testing.T) {
	t.Parallel()

	u, err := parseHost("localhost:11434")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)

	u, err = parseHost("https://ollama.internal:443")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
}
