package services

import (
	"sort"
	"sync"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
)

// Router resolves a generation request to exactly one provider by
// name, then checks model compatibility. Text routing is strict: no
// fallback scan across providers.
type Router struct {
	mu        sync.RWMutex
	providers map[string]ports.Provider
}

// NewRouter creates a router over an initial provider set. The map is
// copied; callers keep no handle into the registry.
func NewRouter(providers map[string]ports.Provider) *Router {
	m := make(map[string]ports.Provider, len(providers))
	for name, p := range providers {
		m[name] = p
	}
	return &Router{providers: m}
}

// Register adds or replaces a provider. Last-registered wins; in-flight
// lookups observe the update on their next read.
func (r *Router) Register(name string, p ports.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// Unregister removes a provider. Removing an absent name is a no-op.
func (r *Router) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, name)
}

// GetProvider resolves the request's provider and verifies model
// support.
func (r *Router) GetProvider(req *domain.GenerationRequest) (ports.Provider, error) {
	r.mu.RLock()
	p, ok := r.providers[req.Provider]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ProviderNotFoundError(req.Provider)
	}
	if !p.SupportsModel(req.Model) {
		return nil, domain.ModelNotSupportedError(req.Provider, req.Model)
	}
	return p, nil
}

// ListModels reports every registered provider's supported models.
// Providers that cannot enumerate report an empty list.
func (r *Router) ListModels() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.providers))
	for name, p := range r.providers {
		var models []string
		if lister, ok := p.(ports.ModelLister); ok {
			models = lister.Models()
		}
		out[name] = models
	}
	return out
}

// Providers returns a snapshot of the registered providers.
func (r *Router) Providers() map[string]ports.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]ports.Provider, len(r.providers))
	for name, p := range r.providers {
		out[name] = p
	}
	return out
}

// ProviderNames returns registered names in sorted order.
func (r *Router) ProviderNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
