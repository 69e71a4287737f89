package llm

import (
	"fmt"
	"sync"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/ports"
)

// Factory builds a provider adapter from its configuration block. name
// is the key the provider is registered under in the router.
type Factory func(name string, cfg config.ProviderConfig) (ports.Provider, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register installs a factory for a provider type. Adapters call this
// from init(), so duplicate registration is a programming error.
func Register(providerType string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[providerType]; exists {
		panic(fmt.Sprintf("provider factory %s already registered", providerType))
	}
	factories[providerType] = f
}

// Get returns the factory for a provider type.
func Get(providerType string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := factories[providerType]
	if !ok {
		return nil, fmt.Errorf("provider factory not found for type: %s", providerType)
	}
	return f, nil
}

// Build creates a provider from config, dispatching on cfg.Type.
func Build(name string, cfg config.ProviderConfig) (ports.Provider, error) {
	f, err := Get(cfg.Type)
	if err != nil {
		return nil, fmt.Errorf("factory lookup failed for provider %s: %w", name, err)
	}
	return f(name, cfg)
}
