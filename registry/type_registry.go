/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// typeRegistry maps Go types to the EntityType value stored with each item.
var (
	typeNames = make(map[reflect.Type]string)
	nameTypes = make(map[string]reflect.Type)
	typeMu    sync.RWMutex
)

// RegisterEntityType records name as the EntityType of T.
// It panics when name is already taken by another type, to prevent accidental overrides.
func RegisterEntityType[T any](name string) {
	t := reflect.TypeFor[T]()

	typeMu.Lock()
	defer typeMu.Unlock()

	if existing, exists := nameTypes[name]; exists && existing != t {
		panic(fmt.Sprintf("type registry: entity type %q already registered for %s", name, existing))
	}
	if previous, exists := typeNames[t]; exists {
		delete(nameTypes, previous)
	}
	typeNames[t] = name
	nameTypes[name] = t
}

// EntityTypeName returns the EntityType registered for T.
func EntityTypeName[T any]() (string, bool) {
	typeMu.RLock()
	defer typeMu.RUnlock()
	name, ok := typeNames[reflect.TypeFor[T]()]
	return name, ok
}

// LookupEntityType returns the Go type registered under name.
func LookupEntityType(name string) (reflect.Type, error) {
	typeMu.RLock()
	defer typeMu.RUnlock()
	t, ok := nameTypes[name]
	if !ok {
		return nil, fmt.Errorf("type registry: no type registered for entity type %q", name)
	}
	return t, nil
}
