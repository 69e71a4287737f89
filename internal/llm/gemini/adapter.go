package gemini

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
	llm.Register("gemini", NewAdapter)
}

type Adapter struct {
	name   string
	config config.ProviderConfig
	client *http.Client
}

func NewAdapter(name string, cfg config.ProviderConfig) (ports.Provider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &Adapter{
		name:   name,
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) SupportsModel(model string) bool {
	for _, m := range a.config.Models {
		if m == model {
			return true
		}
	}
	return strings.HasPrefix(model, "gemini-")
}

func (a *Adapter) Models() []string {
	return a.config.Models
}

func (a *Adapter) IsAvailable(ctx context.Context) bool {
	return true
}

type part struct {
	Text string `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type generateResponse struct {
	Candidates    []candidate `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

func shape(req *domain.GenerationRequest) generateRequest {
	gr := generateRequest{
		GenerationConfig: &generationConfig{
			MaxOutputTokens: req.MaxTokens,
			Temperature:     req.Temperature,
			TopP:            req.TopP,
		},
	}
	if req.SystemInstruction != "" {
		gr.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}
	for _, m := range req.History {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		gr.Contents = append(gr.Contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}
	gr.Contents = append(gr.Contents, content{Role: "user", Parts: []part{{Text: req.Prompt}}})
	return gr
}

func mapFinishReason(reason string) domain.FinishReason {
	switch reason {
	case "STOP":
		return domain.FinishStop
	case "MAX_TOKENS":
		return domain.FinishLength
	case "SAFETY":
		return domain.FinishSafety
	case "RECITATION":
		return domain.FinishRecitation
	default:
		return domain.FinishOther
	}
}

func candidateText(c candidate) string {
	var b strings.Builder
	for _, p := range c.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (a *Adapter) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(a.config.BaseURL, "/"), req.Model, a.config.APIKey)

	var resp generateResponse
	if err := httpclient.Send(ctx, a.client, http.MethodPost, url, nil, shape(req), &resp); err != nil {
		return nil, domain.ProviderError(fmt.Sprintf("%s generation failed", a.name), err)
	}
	if len(resp.Candidates) == 0 {
		return nil, domain.ProviderError(fmt.Sprintf("%s returned no candidates", a.name), nil)
	}

	cand := resp.Candidates[0]
	text := candidateText(cand)
	if text == "" {
		return nil, domain.ProviderError(fmt.Sprintf("%s returned empty content", a.name), nil)
	}
	return domain.NewGenerationResult(req.ID, text, req.Model,
		resp.UsageMetadata.TotalTokenCount, mapFinishReason(cand.FinishReason))
}

func (a *Adapter) GenerateStream(ctx context.Context, req *domain.GenerationRequest) (<-chan ports.Fragment, error) {
	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?key=%s&alt=sse",
		strings.TrimRight(a.config.BaseURL, "/"), req.Model, a.config.APIKey)

	ch := make(chan ports.Fragment)
	go func() {
		defer close(ch)

		err := httpclient.Stream(ctx, a.client, http.MethodPost, url, nil, shape(req), func(line string) error {
			if !strings.HasPrefix(line, "data: ") {
				return nil
			}
			var resp generateResponse
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &resp); err != nil {
				return nil
			}
			if len(resp.Candidates) == 0 {
				return nil
			}
			text := candidateText(resp.Candidates[0])
			if text == "" {
				return nil
			}

			select {
			case ch <- ports.Fragment{Content: text}:
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
