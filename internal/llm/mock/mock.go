package mock

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/llm"
)

func init() {
	llm.Register("mock", func(name string, cfg config.ProviderConfig) (ports.Provider, error) {
		p := New(name)
		if len(cfg.Models) > 0 {
			p.models = cfg.Models
		}
		return p, nil
	})
}

// Provider is a deterministic in-process backend. It needs no API key,
// which makes it the default when nothing else is configured, and the
// workhorse of the test suites.
type Provider struct {
	name        string
	models      []string
	unavailable atomic.Bool
}

func New(name string) *Provider {
	return &Provider{
		name:   name,
		models: []string{"mock-small", "mock-large"},
	}
}

func (p *Provider) Name() string { return p.name }

// SetAvailable flips what IsAvailable reports.
func (p *Provider) SetAvailable(available bool) {
	p.unavailable.Store(!available)
}

func (p *Provider) IsAvailable(ctx context.Context) bool {
	return !p.unavailable.Load()
}

func (p *Provider) SupportsModel(model string) bool {
	for _, m := range p.models {
		if m == model {
			return true
		}
	}
	return false
}

func (p *Provider) Models() []string {
	return p.models
}

func (p *Provider) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content := fmt.Sprintf("Mock response to: %s", req.Prompt)
	return domain.NewGenerationResult(req.ID, content, req.Model, len(strings.Fields(content)), domain.FinishStop)
}

func (p *Provider) GenerateStream(ctx context.Context, req *domain.GenerationRequest) (<-chan ports.Fragment, error) {
	result, err := p.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	words := strings.Fields(result.Content)
	ch := make(chan ports.Fragment)
	go func() {
		defer close(ch)
		for i, w := range words {
			if i < len(words)-1 {
				w += " "
			}
			select {
			case ch <- ports.Fragment{Content: w}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
