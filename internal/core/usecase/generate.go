package usecase

import (
	"context"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/nulzo/ai-gateway/internal/core/usecase")

// Generate orchestrates a generation request: route, probe
// availability, delegate to the provider. It performs no buffering or
// transformation of streamed output.
type Generate struct {
	router *services.Router
}

// NewGenerate creates the generation use case.
func NewGenerate(router *services.Router) *Generate {
	return &Generate{router: router}
}

func (g *Generate) resolve(ctx context.Context, req *domain.GenerationRequest) (ports.Provider, error) {
	provider, err := g.router.GetProvider(req)
	if err != nil {
		logger.Warn("provider routing failed",
			zap.String("provider", req.Provider),
			zap.String("model", req.Model),
			zap.Error(err),
		)
		return nil, err
	}
	if !provider.IsAvailable(ctx) {
		return nil, domain.ProviderUnavailableError(req.Provider)
	}
	return provider, nil
}

// Execute produces a complete response in one call.
func (g *Generate) Execute(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	ctx, span := tracer.Start(ctx, "usecase.Generate",
		trace.WithAttributes(
			attribute.String("ai.provider", req.Provider),
			attribute.String("ai.model", req.Model),
		))
	defer span.End()

	provider, err := g.resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result, err := provider.Generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("ai.tokens_used", result.TokensUsed))
	return result, nil
}

// ExecuteStream resolves and probes exactly like Execute, then hands
// back the provider's fragment sequence untouched. Latency and
// partial-failure behavior are the provider's.
func (g *Generate) ExecuteStream(ctx context.Context, req *domain.GenerationRequest) (<-chan ports.Fragment, error) {
	ctx, span := tracer.Start(ctx, "usecase.GenerateStream",
		trace.WithAttributes(
			attribute.String("ai.provider", req.Provider),
			attribute.String("ai.model", req.Model),
		))
	defer span.End()

	provider, err := g.resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return provider.GenerateStream(ctx, req)
}
