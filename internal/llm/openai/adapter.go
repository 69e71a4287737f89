package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/httpclient"
	"github.com/nulzo/ai-gateway/internal/llm"
	"github.com/nulzo/ai-gateway/internal/logger"
	"go.uber.org/zap"
)

func init() {
	llm.Register("openai", NewAdapter)
}

// Adapter speaks the OpenAI chat completions API. It also covers any
// OpenAI-compatible backend when pointed at a different BaseURL.
type Adapter struct {
	name   string
	config config.ProviderConfig
	client *http.Client
}

func NewAdapter(name string, cfg config.ProviderConfig) (ports.Provider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return &Adapter{
		name:   name,
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Adapter) Name() string { return a.name }

// SupportsModel accepts anything when the configured model list
// contains the wildcard "*".
func (a *Adapter) SupportsModel(model string) bool {
	for _, m := range a.config.Models {
		if m == "*" || m == model {
			return true
		}
	}
	return false
}

func (a *Adapter) Models() []string {
	return a.config.Models
}

// IsAvailable is optimistic. A bad key or unreachable backend shows up
// as a generation error rather than blocking routing up front.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	return true
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

type chatRequest struct {
	Model         string         `json:"model"`
	Messages      []chatMessage  `json:"messages"`
	MaxTokens     int            `json:"max_tokens,omitempty"`
	Temperature   float64        `json:"temperature,omitempty"`
	TopP          float64        `json:"top_p,omitempty"`
	Stream        bool           `json:"stream,omitempty"`
	StreamOptions *streamOptions `json:"stream_options,omitempty"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

func buildMessages(req *domain.GenerationRequest) []chatMessage {
	messages := make([]chatMessage, 0, len(req.History)+2)
	if req.SystemInstruction != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.History {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content, Name: m.Name})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})
	return messages
}

func mapFinishReason(reason string) domain.FinishReason {
	switch reason {
	case "stop":
		return domain.FinishStop
	case "length":
		return domain.FinishLength
	case "content_filter":
		return domain.FinishSafety
	default:
		return domain.FinishOther
	}
}

func (a *Adapter) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + a.config.APIKey,
	}
}

func (a *Adapter) endpoint() string {
	return fmt.Sprintf("%s/chat/completions", strings.TrimRight(a.config.BaseURL, "/"))
}

func (a *Adapter) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	body := chatRequest{
		Model:       req.Model,
		Messages:    buildMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}

	var resp chatResponse
	if err := httpclient.Send(ctx, a.client, http.MethodPost, a.endpoint(), a.headers(), body, &resp); err != nil {
		return nil, domain.ProviderError(fmt.Sprintf("%s generation failed", a.name), err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.ProviderError(fmt.Sprintf("%s returned no choices", a.name), nil)
	}

	choice := resp.Choices[0]
	modelUsed := resp.Model
	if modelUsed == "" {
		modelUsed = req.Model
	}
	return domain.NewGenerationResult(req.ID, choice.Message.Content, modelUsed,
		resp.Usage.TotalTokens, mapFinishReason(choice.FinishReason))
}

func (a *Adapter) GenerateStream(ctx context.Context, req *domain.GenerationRequest) (<-chan ports.Fragment, error) {
	body := chatRequest{
		Model:         req.Model,
		Messages:      buildMessages(req),
		MaxTokens:     req.MaxTokens,
		Temperature:   req.Temperature,
		TopP:          req.TopP,
		Stream:        true,
		StreamOptions: &streamOptions{IncludeUsage: true},
	}

	ch := make(chan ports.Fragment)
	go func() {
		defer close(ch)

		err := httpclient.Stream(ctx, a.client, http.MethodPost, a.endpoint(), a.headers(), body, func(line string) error {
			if !strings.HasPrefix(line, "data: ") {
				return nil
			}
			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				return nil
			}

			var chunk chatResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				logger.Debug("skipping malformed stream chunk", zap.String("provider", a.name), zap.Error(err))
				return nil
			}
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				return nil
			}

			select {
			case ch <- ports.Fragment{Content: chunk.Choices[0].Delta.Content}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

		if err != nil && ctx.Err() == nil {
			ch <- ports.Fragment{Err: domain.ProviderError(fmt.Sprintf("%s stream failed", a.name), err)}
		}
	}()

	return ch, nil
}
