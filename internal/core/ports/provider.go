package ports

import (
	"context"

	"github.com/nulzo/ai-gateway/internal/core/domain"
)

// Fragment is one increment of streamed generated content. A fragment
// carrying Err terminates the stream abnormally; the channel is closed
// after it.
type Fragment struct {
	Content string
	Err     error
}

// Provider is the contract every generation backend implements.
type Provider interface {
	// Generate blocks until a complete response is available.
	Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error)

	// GenerateStream produces a lazy, finite, non-restartable sequence
	// of content increments. The channel is closed when the stream
	// ends, normally or not. Cancelling ctx releases the underlying
	// backend connection; callers that abandon a stream early must
	// cancel.
	GenerateStream(ctx context.Context, req *domain.GenerationRequest) (<-chan Fragment, error)

	// IsAvailable is a lightweight liveness probe. It never fails;
	// backends that cannot cheaply probe report true.
	IsAvailable(ctx context.Context) bool

	// SupportsModel reports whether this backend accepts the model.
	SupportsModel(model string) bool
}

// ModelLister is optionally implemented by providers that can
// enumerate their supported models.
type ModelLister interface {
	Models() []string
}

// ImageProvider is the contract for image generation backends.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req *domain.ImageRequest) (*domain.ImageResult, error)
	SupportsModel(model string) bool
}
