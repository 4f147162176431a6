/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"maps"
	"reflect"
	"sync"
)

// IndexMapRegistry associates Go types with their DynamoDB key templates.

var (
	indexMapRegistry = make(map[reflect.Type]map[string]string)
	mu               sync.RWMutex
)

// RegisterIndexMap associates a Go type T with a given DynamoDB index map (PK, SK, PK1, ...).
// Registering again replaces the previous map.
func RegisterIndexMap[T any](idxMap map[string]string) {
	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	indexMapRegistry[t] = maps.Clone(idxMap)
}

// GetIndexMap retrieves a copy of the index map for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	t := reflect.TypeFor[T]()

	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[t]
	if !ok {
		return nil, false
	}
	return maps.Clone(m), true
}
