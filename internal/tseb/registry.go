package tseb

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface an embedding application implements to link its
// model runners into a Registry.
type Module interface {
	Register(r *Registry)
}

// Registry maps model variant names to the factories that build their
// runners.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a factory to a model variant name. Registering the same
// name twice is a programmer error.
func (r *Registry) Register(name string, factory Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("model factory with name '%s' already registered", name))
	}
	slog.Debug("Registering model factory.", "name", name)
	r.factories[name] = factory
}

// Lookup returns the factory registered for a model variant name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns the registered model variant names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
