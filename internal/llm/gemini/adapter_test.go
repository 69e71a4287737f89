package gemini

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

	p, err := NewAdapter("gemini", config.ProviderConfig{
		Type:    "gemini",
		BaseURL: server.URL,
		APIKey:  "test-key",
		Models:  []string{"gemini-2.0-flash"},
	})
	require.NoError(t, err)
	return p.(*Adapter)
}

func TestGenerate(t *testing.T) {
	var captured generateRequest
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content":      map[string]any{"parts": []map[string]any{{"text": "bonjour"}}},
					"finishReason": "STOP",
				},
			},
			"usageMetadata": map[string]any{"totalTokenCount": 7},
		})
	})

	req, err := domain.NewGenerationRequest("greet in french", "gemini-2.0-flash", "gemini",
		domain.WithSystemInstruction("answer briefly"),
		domain.WithHistory([]domain.Message{{Role: "assistant", Content: "earlier"}}))
	require.NoError(t, err)

	result, err := adapter.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "bonjour", result.Content)
	assert.Equal(t, 7, result.TokensUsed)
	assert.Equal(t, domain.FinishStop, result.FinishReason)

	require.NotNil(t, captured.SystemInstruction)
	require.Len(t, captured.Contents, 2)
	// assistant history turns map to the model role
	assert.Equal(t, "model", captured.Contents[0].Role)
	assert.Equal(t, "user", captured.Contents[1].Role)
}

func TestMapFinishReason(t *testing.T) {
	assert.Equal(t, domain.FinishStop, mapFinishReason("STOP"))
	assert.Equal(t, domain.FinishLength, mapFinishReason("MAX_TOKENS"))
	assert.Equal(t, domain.FinishSafety, mapFinishReason("SAFETY"))
	assert.Equal(t, domain.FinishRecitation, mapFinishReason("RECITATION"))
	assert.Equal(t, domain.FinishOther, mapFinishReason("FINISH_REASON_UNSPECIFIED"))
}

func TestGenerateStream(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:streamGenerateContent", r.URL.Path)
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"bon\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"jour\"}]},\"finishReason\":\"STOP\"}]}\n\n")
	})

	req, err := domain.NewGenerationRequest("greet", "gemini-2.0-flash", "gemini")
	require.NoError(t, err)

	ch, err := adapter.GenerateStream(context.Background(), req)
	require.NoError(t, err)

	var got string
	for f := range ch {
		require.NoError(t, f.Err)
		got += f.Content
	}
	assert.Equal(t, "bonjour", got)
}

func TestSupportsModel(t *testing.T) {
	adapter := newTestAdapter(t, nil)
	assert.True(t, adapter.SupportsModel("gemini-2.0-flash"))
	assert.True(t, adapter.SupportsModel("gemini-ultra-next"))
	assert.False(t, adapter.SupportsModel("claude-3"))
}
