// Package manager provides the in-memory resource repository: keyed storage
// of resources by name with soft-delete-aware listing and hard removal.
package manager

import (
	"sort"
	"sync"

	"github.com/cloudconnect/cloudconnect/pkg/resource"
)

// Manager stores resources keyed by name, one entry per name. Soft deletion
// (a resource's own Delete) keeps the entry; Remove is the hard delete.
// The mutex serializes access so concurrent callers cannot corrupt the map.
type Manager struct {
	mu        sync.RWMutex
	resources map[string]*resource.Resource
}

// New creates an empty manager.
func New() *Manager {
	return &Manager{
		resources: make(map[string]*resource.Resource),
	}
}

// Add stores a resource. It fails with ALREADY_EXISTS when the name is
// already stored, regardless of the stored resource's lifecycle state.
func (m *Manager) Add(r *resource.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := r.Name()
	if _, exists := m.resources[name]; exists {
		return resource.NewAlreadyExistsError(name)
	}
	m.resources[name] = r
	return nil
}

// Get retrieves a resource by name, failing with NOT_FOUND when absent.
// Soft-deleted resources are still retrievable.
func (m *Manager) Get(name string) (*resource.Resource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.resources[name]
	if !ok {
		return nil, resource.NewNotFoundError(name)
	}
	return r, nil
}

// Remove hard-deletes the entry for a name, independent of lifecycle state.
// It fails with NOT_FOUND when absent.
func (m *Manager) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resources[name]; !ok {
		return resource.NewNotFoundError(name)
	}
	delete(m.resources, name)
	return nil
}

// List returns the stored resources sorted by name. Soft-deleted resources
// are excluded unless includeDeleted is set.
func (m *Manager) List(includeDeleted bool) []*resource.Resource {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*resource.Resource, 0, len(m.resources))
	for _, r := range m.resources {
		if !includeDeleted && r.IsDeleted() {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns the stored resource names with the same filter as List.
func (m *Manager) Names(includeDeleted bool) []string {
	resources := m.List(includeDeleted)
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.Name())
	}
	return names
}

// Exists checks membership by name. It never fails and does not consider
// the soft-delete flag.
func (m *Manager) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.resources[name]
	return ok
}

// Count returns the number of stored resources under the same filter as List.
func (m *Manager) Count(includeDeleted bool) int {
	return len(m.List(includeDeleted))
}

// Clear removes all entries unconditionally. Confirmation is the caller's
// responsibility.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resources = make(map[string]*resource.Resource)
}
