package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFakeUpstream(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": content}},
				},
				"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5},
			})
		}
	}))
}

func TestCompleteReturnsContent(t *testing.T) {
	srv := newFakeUpstream(t, http.StatusOK, `{"success":true}`)
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test", Model: "gpt-4o-mini"}, zap.NewNop())
	require.NoError(t, err)

	got, err := c.Complete(context.Background(), "you are a stylist", "dress me")
	require.NoError(t, err)
	assert.Equal(t, `{"success":true}`, got)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := newFakeUpstream(t, http.StatusInternalServerError, "")
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test", Model: "gpt-4o-mini"}, zap.NewNop())
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "sys", "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewClientRequiresModel(t *testing.T) {
	_, err := NewClient(Config{APIKey: "test"}, zap.NewNop())
	assert.Error(t, err)
}
