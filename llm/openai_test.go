package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer fakes an OpenAI-compatible /chat/completions endpoint and
// records the last request it served.
func chatServer(t *testing.T, reply string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var lastReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  lastReq["model"],
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": reply},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &lastReq
}

func TestOpenAIClient_Generate(t *testing.T) {
	srv, lastReq := chatServer(t, "  - Go\n- Kubernetes  ")

	c, err := NewOpenAIClient("test-key",
		WithBaseURL(srv.URL+"/v1"),
		WithModel("test-model"),
	)
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), "List my skills")
	require.NoError(t, err)
	assert.Equal(t, "- Go\n- Kubernetes", out, "response should be trimmed")

	req := *lastReq
	assert.Equal(t, "test-model", req["model"])
	msgs, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "List my skills", msg["content"])
}

func TestOpenAIClient_GenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("test-key", WithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "anything")
	assert.ErrorContains(t, err, "no choices")
}

func TestOpenAIClient_GenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("test-key", WithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "anything")
	assert.ErrorContains(t, err, "chat completion failed")
}

func TestNewOpenAIClient_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := NewOpenAIClient("")
	assert.Error(t, err)
}

func TestNewOpenAIClient_KeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	c, err := NewOpenAIClient("")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	c, err := NewGeminiClient("test-key")
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, c.Model())
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := NewGeminiClient("")
	assert.Error(t, err)
}

func TestGenerateFunc(t *testing.T) {
	var got string
	f := GenerateFunc(func(_ context.Context, prompt string) (string, error) {
		got = prompt
		return "canned", nil
	})

	out, err := f.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "canned", out)
	assert.Equal(t, "hello", got)
}
