package services

import (
	"sync"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
)

// ImageRouter resolves image requests. Unlike the text Router it falls
// back to scanning all registered providers for one that supports the
// requested model when the named provider is absent.
type ImageRouter struct {
	mu        sync.RWMutex
	providers map[string]ports.ImageProvider
}

// NewImageRouter creates an image router over an initial provider set.
func NewImageRouter(providers map[string]ports.ImageProvider) *ImageRouter {
	m := make(map[string]ports.ImageProvider, len(providers))
	for name, p := range providers {
		m[name] = p
	}
	return &ImageRouter{providers: m}
}

// Register adds or replaces an image provider.
func (r *ImageRouter) Register(name string, p ports.ImageProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// Len reports how many image providers are registered.
func (r *ImageRouter) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// GetProvider resolves the request's provider. If the named provider
// is absent, the first registered provider supporting the model wins.
func (r *ImageRouter) GetProvider(req *domain.ImageRequest) (ports.ImageProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[req.Provider]
	if !ok {
		for _, candidate := range r.providers {
			if candidate.SupportsModel(req.Model) {
				return candidate, nil
			}
		}
		return nil, domain.ProviderNotFoundError(req.Provider)
	}

	if !p.SupportsModel(req.Model) {
		return nil, domain.ModelNotSupportedError(req.Provider, req.Model)
	}
	return p, nil
}
