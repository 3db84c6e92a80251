package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageReply = `{"id":"msg_01","type":"message","role":"assistant","model":"claude-3-7-sonnet-20250219",` +
	`"content":[{"type":"text","text":"Result: {\"enhancedInsights\": []}"}],` +
	`"stop_reason":"end_turn","usage":{"input_tokens":5,"output_tokens":3}}`

func TestExtractJSON(t *testing.T) {
	obj, err := ExtractJSON("Sure! Here you go:\n```json\n{\"a\": {\"b\": 1}}\n```\nHope it helps.")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": float64(1)}, obj["a"])

	_, err = ExtractJSON("no braces at all")
	assert.ErrorIs(t, err, ErrNoJSON)

	// Greedy span from the first '{' to the last '}' breaks on two separate objects.
	_, err = ExtractJSON(`{"a":1} and {"b":2}`)
	assert.Error(t, err)
}

func TestGenerateJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		assert.NotEmpty(t, r.Header.Get("Anthropic-Version"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req["model"])
		assert.EqualValues(t, DefaultMaxTokens, req["max_tokens"])
		system, ok := req["system"].([]any)
		require.True(t, ok)
		require.Len(t, system, 1)
		assert.Equal(t, "sys", system[0].(map[string]any)["text"])
		messages, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 1)
		assert.Equal(t, "user", messages[0].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(messageReply))
	}))
	defer srv.Close()

	c, err := NewClient(nil, Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)
	obj, err := c.GenerateJSON(context.Background(), "sys", "hello", "enrichment", nil)
	require.NoError(t, err)
	assert.Contains(t, obj, "enhancedInsights")
}

func TestRemoteErrorIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(nil, Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = c.GenerateJSON(context.Background(), "sys", "hello", "enrichment", nil)
	var apiErr *sdk.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "500", statusOf(err))
	assert.EqualValues(t, 1, hits.Load())
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(nil, Config{APIKey: "  "})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
