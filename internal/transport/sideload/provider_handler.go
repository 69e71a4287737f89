package sideload

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/logger"
)

type generateParams struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
		Name    string `json:"name,omitempty"`
	} `json:"messages"`
	Options struct {
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		TopP        float64 `json:"top_p"`
	} `json:"options"`
}

type generateResult struct {
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason"`
	ModelUsed    string `json:"model_used"`
	TokensUsed   int    `json:"tokens_used"`
}

// ProviderHandler serves provider/generate by routing through the
// same provider layer the gRPC surface uses.
type ProviderHandler struct {
	router          *services.Router
	defaultProvider string
}

func NewProviderHandler(router *services.Router, defaultProvider string) *ProviderHandler {
	return &ProviderHandler{router: router, defaultProvider: defaultProvider}
}

// HandleGenerate answers every params shape with a result object.
// Provider faults come back as a finish_reason "error" result rather
// than a JSON-RPC error, so callers always get a renderable payload.
func (h *ProviderHandler) HandleGenerate(ctx context.Context, raw json.RawMessage) (any, error) {
	var params generateParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, domain.ProtocolError(fmt.Sprintf("invalid provider/generate params: %v", err))
		}
	}
	if params.Provider == "" {
		params.Provider = h.defaultProvider
	}

	// Hoist the chat transcript into prompt, history and system
	// instruction. The prompt is the first user message; everything
	// after it stays in history in order.
	var (
		prompt            string
		history           []domain.Message
		systemInstruction string
	)
	for _, m := range params.Messages {
		switch m.Role {
		case "system":
			systemInstruction = m.Content
		case "user":
			if prompt == "" {
				prompt = m.Content
			} else {
				history = append(history, domain.Message{Role: "user", Content: m.Content})
			}
		default:
			history = append(history, domain.Message{Role: m.Role, Content: m.Content, Name: m.Name})
		}
	}
	if prompt == "" && len(history) > 0 {
		last := history[len(history)-1]
		history = history[:len(history)-1]
		prompt = last.Content
	}
	if prompt == "" {
		return generateResult{FinishReason: "error", ModelUsed: params.Model}, nil
	}

	var opts []domain.GenerationOption
	if params.Options.MaxTokens > 0 {
		opts = append(opts, domain.WithMaxTokens(params.Options.MaxTokens))
	}
	if params.Options.Temperature > 0 {
		opts = append(opts, domain.WithTemperature(params.Options.Temperature))
	}
	if params.Options.TopP > 0 {
		opts = append(opts, domain.WithTopP(params.Options.TopP))
	}
	opts = append(opts, domain.WithHistory(history), domain.WithSystemInstruction(systemInstruction))

	req, err := domain.NewGenerationRequest(prompt, params.Model, params.Provider, opts...)
	if err != nil {
		return errorResult(params.Model, err), nil
	}

	provider, err := h.router.GetProvider(req)
	if err != nil {
		return errorResult(params.Model, err), nil
	}

	result, err := provider.Generate(ctx, req)
	if err != nil {
		logger.Error("provider generate failed",
			zap.String("provider", params.Provider), zap.Error(err))
		return errorResult(params.Model, err), nil
	}

	return generateResult{
		Content:      result.Content,
		FinishReason: string(result.FinishReason),
		ModelUsed:    result.ModelUsed,
		TokensUsed:   result.TokensUsed,
	}, nil
}

func errorResult(model string, err error) generateResult {
	return generateResult{
		Content:      fmt.Sprintf("Error: %v", err),
		FinishReason: "error",
		ModelUsed:    model,
	}
}

type providerCapability struct {
	ID     string   `json:"id"`
	Models []string `json:"models"`
}

// Capabilities lists registered providers and their models for the
// initialize response.
func (h *ProviderHandler) Capabilities() []providerCapability {
	models := h.router.ListModels()
	caps := make([]providerCapability, 0, len(models))
	for _, name := range h.router.ProviderNames() {
		m := models[name]
		if m == nil {
			m = []string{}
		}
		caps = append(caps, providerCapability{ID: name, Models: m})
	}
	return caps
}
