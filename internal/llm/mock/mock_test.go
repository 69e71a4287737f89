package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulzo/ai-gateway/internal/core/domain"
)

func TestGenerate(t *testing.T) {
	p := New("mock")
	req, err := domain.NewGenerationRequest("hello world", "mock-small", "mock")
	require.NoError(t, err)

	result, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello world", result.Content)
	assert.Equal(t, domain.FinishStop, result.FinishReason)
}

func TestGenerateStream_ReassemblesToFullContent(t *testing.T) {
	p := New("mock")
	req, err := domain.NewGenerationRequest("one two three", "mock-small", "mock")
	require.NoError(t, err)

	full, err := p.Generate(context.Background(), req)
	require.NoError(t, err)

	ch, err := p.GenerateStream(context.Background(), req)
	require.NoError(t, err)

	var got string
	var n int
	for f := range ch {
		require.NoError(t, f.Err)
		got += f.Content
		n++
	}
	assert.Equal(t, full.Content, got)
	assert.Greater(t, n, 1)
}

func TestAvailabilityToggle(t *testing.T) {
	p := New("mock")
	assert.True(t, p.IsAvailable(context.Background()))

	p.SetAvailable(false)
	assert.False(t, p.IsAvailable(context.Background()))

	p.SetAvailable(true)
	assert.True(t, p.IsAvailable(context.Background()))
}

func TestSupportsModel(t *testing.T) {
	p := New("mock")
	assert.True(t, p.SupportsModel("mock-small"))
	assert.False(t, p.SupportsModel("gpt-4o"))
}
