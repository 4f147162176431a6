/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitymanager

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Registry holds named managers for any number of entity types. It is safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	managers map[string]entry
}

type entry struct {
	entityType reflect.Type
	manager    any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		managers: make(map[string]entry),
	}
}

// Register adds m under name.
func Register[T, Q, S any](r *Registry, name string, m *Manager[T, Q, S]) error {
	if m == nil {
		return fmt.Errorf("manager %q must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.managers[name]; exists {
		return fmt.Errorf("manager with key %q already registered", name)
	}
	r.managers[name] = entry{
		entityType: reflect.TypeFor[T](),
		manager:    m,
	}
	return nil
}

// Lookup returns the manager registered under name. It fails when nothing is
// registered or when the registered manager has different type parameters.
func Lookup[T, Q, S any](r *Registry, name string) (*Manager[T, Q, S], error) {
	r.mu.RLock()
	e, exists := r.managers[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("manager with key %q not found", name)
	}
	m, ok := e.manager.(*Manager[T, Q, S])
	if !ok {
		return nil, fmt.Errorf("manager with key %q manages %s, not %s with the requested descriptors",
			name, e.entityType, reflect.TypeFor[T]())
	}
	return m, nil
}

// Remove deletes the manager registered under name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.managers[name]; !exists {
		return fmt.Errorf("manager with key %q not found", name)
	}
	delete(r.managers, name)
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EntityType returns the entity type managed under name.
func (r *Registry) EntityType(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.managers[name]
	return e.entityType, exists
}
