package sideload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	goversion "github.com/hashicorp/go-version"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/core/usecase"
	"github.com/nulzo/ai-gateway/internal/logger"
)

const (
	serviceName    = "ai-gateway"
	serviceVersion = "1.0.0"

	// minProtocolVersion is the oldest host protocol we can serve.
	minProtocolVersion = "1.0"
)

type initializeParams struct {
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

type initializeResult struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Capabilities capabilities `json:"capabilities"`
}

type capabilities struct {
	Providers []providerCapability `json:"providers"`
	Tools     []toolCapability     `json:"tools"`
	Hooks     []string             `json:"hooks"`
}

// Service wires the full JSON-RPC method table onto a dispatcher.
type Service struct {
	dispatcher *Dispatcher
	providers  *ProviderHandler
	tools      *ToolHandler
}

func NewService(router *services.Router, registry ports.SkillRegistry, executor *usecase.ExecuteSkill, defaultProvider string) *Service {
	s := &Service{
		dispatcher: NewDispatcher(),
		providers:  NewProviderHandler(router, defaultProvider),
		tools:      NewToolHandler(registry, executor),
	}

	s.dispatcher.RegisterMethod("initialize", s.handleInitialize)
	s.dispatcher.RegisterMethod("shutdown", s.handleShutdown)
	s.dispatcher.RegisterMethod("provider/generate", s.providers.HandleGenerate)
	s.dispatcher.RegisterMethod("tool/execute", s.tools.HandleExecute)
	s.dispatcher.RegisterMethod("ping", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return map[string]bool{"pong": true}, nil
	})
	return s
}

// Run serves JSON-RPC over the given streams until shutdown or EOF.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.dispatcher.Run(ctx, in, out)
}

func (s *Service) handleInitialize(ctx context.Context, raw json.RawMessage) (any, error) {
	var params initializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, domain.ProtocolError(fmt.Sprintf("invalid initialize params: %v", err))
		}
	}

	if params.ProtocolVersion != "" {
		offered, err := goversion.NewVersion(params.ProtocolVersion)
		if err != nil {
			return nil, domain.ProtocolError(fmt.Sprintf("invalid protocol_version %q: %v", params.ProtocolVersion, err))
		}
		minimum := goversion.Must(goversion.NewVersion(minProtocolVersion))
		if offered.LessThan(minimum) {
			return nil, domain.ProtocolError(fmt.Sprintf("protocol_version %s is older than the minimum supported %s",
				params.ProtocolVersion, minProtocolVersion))
		}
	}

	return initializeResult{
		Name:    serviceName,
		Version: serviceVersion,
		Capabilities: capabilities{
			Providers: s.providers.Capabilities(),
			Tools:     s.tools.Capabilities(),
			Hooks:     []string{"chat.params"},
		},
	}, nil
}

func (s *Service) handleShutdown(ctx context.Context, _ json.RawMessage) (any, error) {
	logger.Info("received shutdown, stopping sideload dispatcher")
	s.dispatcher.Stop()
	return map[string]any{}, nil
}
