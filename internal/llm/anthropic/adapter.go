package anthropic

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
)

func init() {
	llm.Register("anthropic", NewAdapter)
}

const defaultVersion = "2023-06-01"

type Adapter struct {
	name   string
	config config.ProviderConfig
	client *http.Client
}

func NewAdapter(name string, cfg config.ProviderConfig) (ports.Provider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	return &Adapter{
		name:   name,
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Adapter) Name() string { return a.name }

// SupportsModel matches the configured list, plus any "claude-" model
// so new releases work without a config change.
func (a *Adapter) SupportsModel(model string) bool {
	for _, m := range a.config.Models {
		if m == model {
			return true
		}
	}
	return strings.HasPrefix(model, "claude-")
}

func (a *Adapter) Models() []string {
	return a.config.Models
}

func (a *Adapter) IsAvailable(ctx context.Context) bool {
	return true
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	System      string    `json:"system,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type messagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      usage          `json:"usage"`
}

type streamEvent struct {
	Type  string `json:"type"`
	Delta *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta,omitempty"`
}

func toMessagesRequest(req *domain.GenerationRequest) messagesRequest {
	ar := messagesRequest{
		Model:       req.Model,
		System:      req.SystemInstruction,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}
	if ar.MaxTokens == 0 {
		ar.MaxTokens = 4096
	}
	for _, m := range req.History {
		if m.Role == "system" {
			if ar.System != "" {
				ar.System += "\n"
			}
			ar.System += m.Content
			continue
		}
		ar.Messages = append(ar.Messages, message{Role: m.Role, Content: m.Content})
	}
	ar.Messages = append(ar.Messages, message{Role: "user", Content: req.Prompt})
	return ar
}

func mapStopReason(reason string) domain.FinishReason {
	switch reason {
	case "end_turn", "stop_sequence":
		return domain.FinishStop
	case "max_tokens":
		return domain.FinishLength
	default:
		return domain.FinishOther
	}
}

func (a *Adapter) headers() map[string]string {
	return map[string]string{
		"x-api-key":         a.config.APIKey,
		"anthropic-version": defaultVersion,
	}
}

func (a *Adapter) endpoint() string {
	return fmt.Sprintf("%s/messages", strings.TrimRight(a.config.BaseURL, "/"))
}

func (a *Adapter) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	ar := toMessagesRequest(req)

	var resp messagesResponse
	if err := httpclient.Send(ctx, a.client, http.MethodPost, a.endpoint(), a.headers(), ar, &resp); err != nil {
		return nil, domain.ProviderError(fmt.Sprintf("%s generation failed", a.name), err)
	}

	var text strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return nil, domain.ProviderError(fmt.Sprintf("%s returned empty content", a.name), nil)
	}

	modelUsed := resp.Model
	if modelUsed == "" {
		modelUsed = req.Model
	}
	tokens := resp.Usage.InputTokens + resp.Usage.OutputTokens
	return domain.NewGenerationResult(req.ID, text.String(), modelUsed, tokens, mapStopReason(resp.StopReason))
}

func (a *Adapter) GenerateStream(ctx context.Context, req *domain.GenerationRequest) (<-chan ports.Fragment, error) {
	ar := toMessagesRequest(req)
	ar.Stream = true

	ch := make(chan ports.Fragment)
	go func() {
		defer close(ch)

		err := httpclient.Stream(ctx, a.client, http.MethodPost, a.endpoint(), a.headers(), ar, func(line string) error {
			if !strings.HasPrefix(line, "data: ") {
				return nil
			}
			var event streamEvent
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
				return nil
			}
			if event.Type != "content_block_delta" || event.Delta == nil || event.Delta.Text == "" {
				return nil
			}

			select {
			case ch <- ports.Fragment{Content: event.Delta.Text}:
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
