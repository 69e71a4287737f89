package skill

import (
	"sort"
	"sync"

	"github.com/nulzo/ai-gateway/internal/core/ports"
)

// InMemoryRegistry is a threadsafe skill registry.
type InMemoryRegistry struct {
	mu     sync.RWMutex
	skills map[string]ports.Skill
}

func NewInMemoryRegistry(skills ...ports.Skill) *InMemoryRegistry {
	r := &InMemoryRegistry{skills: make(map[string]ports.Skill)}
	for _, s := range skills {
		r.Register(s)
	}
	return r
}

func (r *InMemoryRegistry) Register(s ports.Skill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skills[s.Name()] = s
}

func (r *InMemoryRegistry) Get(id string) (ports.Skill, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.skills[id]
	return s, ok
}

// List returns registered skills sorted by name.
func (r *InMemoryRegistry) List() []ports.Skill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ports.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Defaults returns the built-in skill set.
func Defaults() []ports.Skill {
	return []ports.Skill{
		CurrentTime{},
		Echo{},
		Calculator{},
	}
}
