package usecase

import (
	"context"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GenerateImage orchestrates image generation through the image
// router, including its provider fallback scan.
type GenerateImage struct {
	router *services.ImageRouter
}

// NewGenerateImage creates the image use case.
func NewGenerateImage(router *services.ImageRouter) *GenerateImage {
	return &GenerateImage{router: router}
}

// Execute routes and delegates one image request.
func (g *GenerateImage) Execute(ctx context.Context, req *domain.ImageRequest) (*domain.ImageResult, error) {
	ctx, span := tracer.Start(ctx, "usecase.GenerateImage",
		trace.WithAttributes(
			attribute.String("ai.provider", req.Provider),
			attribute.String("ai.model", req.Model),
		))
	defer span.End()

	provider, err := g.router.GetProvider(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result, err := provider.GenerateImage(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}
