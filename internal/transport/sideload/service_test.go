package sideload

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/core/usecase"
	"github.com/nulzo/ai-gateway/internal/llm/mock"
	"github.com/nulzo/ai-gateway/internal/skill"
)

func newTestService() *Service {
	router := services.NewRouter(map[string]ports.Provider{
		"mock": mock.New("mock"),
	})
	registry := skill.NewInMemoryRegistry(skill.Defaults()...)
	return NewService(router, registry, usecase.NewExecuteSkill(registry), "mock")
}

func call(t *testing.T, s *Service, method string, params any) (any, error) {
	t.Helper()
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return s.dispatcher.handlers[method](context.Background(), raw)
}

func TestInitialize(t *testing.T) {
	result, err := call(t, newTestService(), "initialize", map[string]any{})
	require.NoError(t, err)

	init := result.(initializeResult)
	assert.Equal(t, "ai-gateway", init.Name)
	require.Len(t, init.Capabilities.Providers, 1)
	assert.Equal(t, "mock", init.Capabilities.Providers[0].ID)
	assert.Contains(t, init.Capabilities.Providers[0].Models, "mock-small")

	toolNames := make([]string, 0)
	for _, tc := range init.Capabilities.Tools {
		toolNames = append(toolNames, tc.Name)
	}
	assert.ElementsMatch(t, []string{"calculator", "current_time", "echo"}, toolNames)
	assert.Equal(t, []string{"chat.params"}, init.Capabilities.Hooks)
}

func TestInitialize_ProtocolVersion(t *testing.T) {
	s := newTestService()

	_, err := call(t, s, "initialize", map[string]any{"protocol_version": "1.2"})
	assert.NoError(t, err)

	_, err = call(t, s, "initialize", map[string]any{"protocol_version": "0.9"})
	assert.Error(t, err)

	_, err = call(t, s, "initialize", map[string]any{"protocol_version": "not-a-version"})
	assert.Error(t, err)
}

func TestProviderGenerate(t *testing.T) {
	result, err := call(t, newTestService(), "provider/generate", map[string]any{
		"provider": "mock",
		"model":    "mock-small",
		"messages": []map[string]any{
			{"role": "system", "content": "be brief"},
			{"role": "user", "content": "hello"},
		},
	})
	require.NoError(t, err)

	gen := result.(generateResult)
	assert.Equal(t, "Mock response to: hello", gen.Content)
	assert.Equal(t, "stop", gen.FinishReason)
	assert.Equal(t, "mock-small", gen.ModelUsed)
}

func TestProviderGenerate_DefaultProvider(t *testing.T) {
	result, err := call(t, newTestService(), "provider/generate", map[string]any{
		"model": "mock-small",
		"messages": []map[string]any{
			{"role": "user", "content": "hello"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "stop", result.(generateResult).FinishReason)
}

func TestProviderGenerate_LastMessageAsPrompt(t *testing.T) {
	// No user message at all: the last history entry is hoisted into
	// the prompt.
	result, err := call(t, newTestService(), "provider/generate", map[string]any{
		"provider": "mock",
		"model":    "mock-small",
		"messages": []map[string]any{
			{"role": "assistant", "content": "previous answer"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: previous answer", result.(generateResult).Content)
}

func TestProviderGenerate_EmptyMessages(t *testing.T) {
	result, err := call(t, newTestService(), "provider/generate", map[string]any{
		"provider": "mock",
		"model":    "mock-small",
		"messages": []map[string]any{},
	})
	require.NoError(t, err)

	gen := result.(generateResult)
	assert.Equal(t, "error", gen.FinishReason)
	assert.Empty(t, gen.Content)
}

func TestProviderGenerate_RoutingFailureAsResult(t *testing.T) {
	result, err := call(t, newTestService(), "provider/generate", map[string]any{
		"provider": "missing",
		"model":    "mock-small",
		"messages": []map[string]any{
			{"role": "user", "content": "hello"},
		},
	})
	require.NoError(t, err)

	gen := result.(generateResult)
	assert.Equal(t, "error", gen.FinishReason)
	assert.Contains(t, gen.Content, "Error:")
}

func TestToolExecute(t *testing.T) {
	result, err := call(t, newTestService(), "tool/execute", map[string]any{
		"name":      "echo",
		"arguments": map[string]any{"input": "hi"},
	})
	require.NoError(t, err)

	tr := result.(toolExecuteResult)
	assert.True(t, tr.Success)
	assert.Equal(t, "Echo: hi", tr.Output)
}

func TestToolExecute_TextFallbackAndConfig(t *testing.T) {
	result, err := call(t, newTestService(), "tool/execute", map[string]any{
		"name":      "echo",
		"arguments": map[string]any{"text": "via text", "extra": 42},
	})
	require.NoError(t, err)
	assert.Equal(t, "Echo: via text", result.(toolExecuteResult).Output)
}

func TestToolExecute_NotFound(t *testing.T) {
	result, err := call(t, newTestService(), "tool/execute", map[string]any{
		"name":      "stock_analysis",
		"arguments": map[string]any{},
	})
	require.NoError(t, err)

	tr := result.(toolExecuteResult)
	assert.False(t, tr.Success)
	assert.Equal(t, "tool_not_found", tr.Error)
	assert.Equal(t, "Tool 'stock_analysis' not found", tr.Output)
}

func TestPing(t *testing.T) {
	result, err := call(t, newTestService(), "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"pong": true}, result)
}
