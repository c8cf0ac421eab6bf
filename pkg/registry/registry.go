// Package registry maps resource type names to their builders and provides
// the factory that instantiates resources from raw configuration bags.
package registry

import (
	"sort"
	"sync"

	"github.com/cloudconnect/cloudconnect/pkg/resource"
)

// Registry maintains the mapping from resource type name to builder.
// It is populated once at process start from resource.Builtins and is
// read-mostly afterwards. The mutex only guards against map corruption if
// a caller introduces concurrency; the core itself is single-threaded.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]resource.Builder
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		builders: make(map[string]resource.Builder),
	}
}

// NewWithBuilders creates a registry pre-populated from a builder table.
func NewWithBuilders(builders map[string]resource.Builder) *Registry {
	r := New()
	for name, b := range builders {
		r.Register(name, b)
	}
	return r
}

// Register adds a builder under a type name. Registering the same name
// twice overwrites the previous entry: last write wins.
func (r *Registry) Register(name string, builder resource.Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = builder
}

// Get retrieves the builder for a type name. The error for an unknown name
// enumerates the currently registered names.
func (r *Registry) Get(name string) (resource.Builder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, ok := r.builders[name]
	if !ok {
		return nil, resource.NewTypeNotRegisteredError(name, r.names())
	}
	return builder, nil
}

// List returns all registered type names, sorted for stable output.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

// Contains checks if a type name is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[name]
	return ok
}

// Clear removes all entries. Administrative and testing use only.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders = make(map[string]resource.Builder)
}

// names returns the sorted type names. Callers must hold the lock.
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
