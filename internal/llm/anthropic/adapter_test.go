package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/domain"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAdapter("anthropic", config.ProviderConfig{
		Type:    "anthropic",
		BaseURL: server.URL,
		APIKey:  "test-key",
		Models:  []string{"claude-sonnet-4-20250514"},
	})
	require.NoError(t, err)
	return p.(*Adapter)
}

func TestGenerate(t *testing.T) {
	var captured messagesRequest
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := map[string]any{
			"id":    "msg-1",
			"model": "claude-sonnet-4-20250514",
			"content": []map[string]any{
				{"type": "text", "text": "Hello "},
				{"type": "text", "text": "world"},
			},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 4, "output_tokens": 6},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	req, err := domain.NewGenerationRequest("say hi", "claude-sonnet-4-20250514", "anthropic",
		domain.WithSystemInstruction("be brief"))
	require.NoError(t, err)

	result, err := adapter.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Hello world", result.Content)
	assert.Equal(t, 10, result.TokensUsed)
	assert.Equal(t, domain.FinishStop, result.FinishReason)

	assert.Equal(t, "be brief", captured.System)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestGenerate_MaxTokensStop(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content":     []map[string]any{{"type": "text", "text": "truncat"}},
			"stop_reason": "max_tokens",
		})
	})

	req, err := domain.NewGenerationRequest("go on", "claude-sonnet-4-20250514", "anthropic")
	require.NoError(t, err)

	result, err := adapter.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.FinishLength, result.FinishReason)
	assert.True(t, result.WasTruncated())
}

func TestGenerateStream(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: message_start\n")
		fmt.Fprint(w, "data: {\"type\":\"message_start\"}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"Hi\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\" there\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
	})

	req, err := domain.NewGenerationRequest("say hi", "claude-sonnet-4-20250514", "anthropic")
	require.NoError(t, err)

	ch, err := adapter.GenerateStream(context.Background(), req)
	require.NoError(t, err)

	var got string
	for f := range ch {
		require.NoError(t, f.Err)
		got += f.Content
	}
	assert.Equal(t, "Hi there", got)
}

func TestSupportsModel(t *testing.T) {
	adapter := newTestAdapter(t, nil)
	assert.True(t, adapter.SupportsModel("claude-sonnet-4-20250514"))
	assert.True(t, adapter.SupportsModel("claude-brand-new"))
	assert.False(t, adapter.SupportsModel("gpt-4o"))
}
