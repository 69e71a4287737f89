package openai

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

func newTestAdapter(t *testing.T, handler http.HandlerFunc, models []string) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAdapter("openai", config.ProviderConfig{
		Type:    "openai",
		BaseURL: server.URL,
		APIKey:  "test-key",
		Models:  models,
	})
	require.NoError(t, err)
	return p.(*Adapter)
}

func mustRequest(t *testing.T, opts ...domain.GenerationOption) *domain.GenerationRequest {
	t.Helper()
	req, err := domain.NewGenerationRequest("say hi", "gpt-4o", "openai", opts...)
	require.NoError(t, err)
	return req
}

func TestGenerate(t *testing.T) {
	var captured chatRequest
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := map[string]any{
			"id":    "cmpl-1",
			"model": "gpt-4o-2024-08-06",
			"choices": []map[string]any{
				{"message": map[string]any{"content": "hi!"}, "finish_reason": "stop"},
			},
			"usage": map[string]any{"total_tokens": 12},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}, []string{"*"})

	req := mustRequest(t,
		domain.WithSystemInstruction("be nice"),
		domain.WithHistory([]domain.Message{{Role: "assistant", Content: "earlier"}}),
	)
	result, err := adapter.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "hi!", result.Content)
	assert.Equal(t, "gpt-4o-2024-08-06", result.ModelUsed)
	assert.Equal(t, 12, result.TokensUsed)
	assert.Equal(t, domain.FinishStop, result.FinishReason)

	// system instruction first, history next, prompt last
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "be nice", captured.Messages[0].Content)
	assert.Equal(t, "assistant", captured.Messages[1].Role)
	assert.Equal(t, "user", captured.Messages[2].Role)
	assert.Equal(t, "say hi", captured.Messages[2].Content)
}

func TestGenerate_UpstreamError(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}, []string{"*"})

	_, err := adapter.Generate(context.Background(), mustRequest(t))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProvider))
}

func TestGenerateStream(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, word := range []string{"hel", "lo"} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":\"%s\"}}]}\n\n", word)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}, []string{"*"})

	ch, err := adapter.GenerateStream(context.Background(), mustRequest(t))
	require.NoError(t, err)

	var got string
	for f := range ch {
		require.NoError(t, f.Err)
		got += f.Content
	}
	assert.Equal(t, "hello", got)
}

func TestGenerateStream_Cancelled(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"a\"}}]}\n\n")
		flusher.Flush()
		<-r.Context().Done()
	}, []string{"*"})

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := adapter.GenerateStream(ctx, mustRequest(t))
	require.NoError(t, err)

	<-ch
	cancel()

	// channel must close once the context is gone
	for range ch {
	}
}

func TestSupportsModel_Wildcard(t *testing.T) {
	adapter := newTestAdapter(t, nil, []string{"*"})
	assert.True(t, adapter.SupportsModel("gpt-4o"))
	assert.True(t, adapter.SupportsModel("anything-at-all"))

	pinned := newTestAdapter(t, nil, []string{"gpt-4o"})
	assert.True(t, pinned.SupportsModel("gpt-4o"))
	assert.False(t, pinned.SupportsModel("gpt-3.5-turbo"))
}
