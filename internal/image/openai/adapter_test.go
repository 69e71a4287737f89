package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/domain"
)

func TestGenerateImage(t *testing.T) {
	var captured imageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"url": "https://img.example/1.png"},
				{"url": "https://img.example/2.png"},
			},
		})
	}))
	defer server.Close()

	adapter, err := NewAdapter("dalle", config.ProviderConfig{
		Type:    "openai",
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)

	req, err := domain.NewImageRequest("a red fox", "dall-e-3", "dalle",
		domain.WithDimensions(512, 512), domain.WithNumImages(2))
	require.NoError(t, err)

	result, err := adapter.GenerateImage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://img.example/1.png", "https://img.example/2.png"}, result.ImageURLs)
	assert.Equal(t, "dall-e-3", result.ModelUsed)
	assert.Equal(t, "512x512", captured.Size)
	assert.Equal(t, 2, captured.N)
}

func TestGenerateImage_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	adapter, err := NewAdapter("dalle", config.ProviderConfig{BaseURL: server.URL, APIKey: "k"})
	require.NoError(t, err)

	req, err := domain.NewImageRequest("a fox", "dall-e-3", "dalle")
	require.NoError(t, err)

	_, err = adapter.GenerateImage(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProvider))
}

func TestSupportsModel(t *testing.T) {
	adapter, err := NewAdapter("dalle", config.ProviderConfig{APIKey: "k"})
	require.NoError(t, err)

	assert.True(t, adapter.(*Adapter).SupportsModel("dall-e-3"))
	assert.False(t, adapter.(*Adapter).SupportsModel("sdxl"))
}
