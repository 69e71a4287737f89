package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/httpclient"
)

// Adapter generates images through the OpenAI images API.
type Adapter struct {
	name   string
	config config.ProviderConfig
	client *http.Client
}

func NewAdapter(name string, cfg config.ProviderConfig) (ports.ImageProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return &Adapter{
		name:   name,
		config: cfg,
		client: &http.Client{Timeout: 180 * time.Second},
	}, nil
}

func (a *Adapter) SupportsModel(model string) bool {
	for _, m := range a.config.Models {
		if m == "*" || m == model {
			return true
		}
	}
	return strings.HasPrefix(model, "dall-e")
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (a *Adapter) GenerateImage(ctx context.Context, req *domain.ImageRequest) (*domain.ImageResult, error) {
	body := imageRequest{
		Model:          req.Model,
		Prompt:         req.Prompt,
		N:              req.NumImages,
		Size:           fmt.Sprintf("%dx%d", req.Width, req.Height),
		ResponseFormat: "url",
	}

	url := fmt.Sprintf("%s/images/generations", strings.TrimRight(a.config.BaseURL, "/"))
	headers := map[string]string{
		"Authorization": "Bearer " + a.config.APIKey,
	}

	var resp imageResponse
	if err := httpclient.Send(ctx, a.client, http.MethodPost, url, headers, body, &resp); err != nil {
		return nil, domain.ProviderError(fmt.Sprintf("%s image generation failed", a.name), err)
	}
	if len(resp.Data) == 0 {
		return nil, domain.ProviderError(fmt.Sprintf("%s returned no images", a.name), nil)
	}

	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		urls = append(urls, d.URL)
	}
	return domain.NewImageResult(req.ID, urls, req.Model)
}
