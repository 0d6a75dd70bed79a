package triggers

import (
	"slices"
	"sync"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry maps dotted trigger identifiers to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry populated by Register.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry. It is meant to be called
// from init and panics on an invalid or duplicate identifier.
func Register(identifier string, factory Factory) {
	defaultRegistry.MustRegister(identifier, factory)
}

// Register installs a factory under identifier.
func (r *Registry) Register(identifier string, factory Factory) error {
	if identifier == "" {
		return zerr.Wrap(domain.ErrExtensionLoad, "trigger identifier is required")
	}
	if factory == nil {
		return zerr.With(zerr.Wrap(domain.ErrExtensionLoad, "trigger factory is required"), "identifier", identifier)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[identifier]; exists {
		return zerr.With(zerr.Wrap(domain.ErrExtensionLoad, "trigger already registered"), "identifier", identifier)
	}
	r.factories[identifier] = factory
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(identifier string, factory Factory) {
	if err := r.Register(identifier, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under identifier.
func (r *Registry) Lookup(identifier string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[identifier]
	return factory, ok
}

// Identifiers returns the sorted registered identifiers.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
