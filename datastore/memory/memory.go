/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides a map-backed datastore.Repository evaluating
// query.Spec predicates, for tests and demos.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/suparena/entitymanager/datastore"
	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/query"
)

// Store is an in-memory implementation of datastore.Repository. Entities are
// copied on the way in and out, and listed in insertion order unless sorted.
type Store[T any] struct {
	mu      sync.RWMutex
	data    map[string]T
	order   []string
	keyFunc datastore.KeyFunc[T]

	createError error
	getError    error
	updateError error
	deleteError error
	countError  error
	pageError   error
}

var _ datastore.Repository[struct{}, query.Spec[struct{}], query.Sort[struct{}]] = (*Store[struct{}])(nil)

// New creates an empty store identifying entities with keyFunc.
func New[T any](keyFunc datastore.KeyFunc[T]) *Store[T] {
	return &Store[T]{
		data:    make(map[string]T),
		keyFunc: keyFunc,
	}
}

// WithCreateError makes Create return err.
func (s *Store[T]) WithCreateError(err error) *Store[T] {
	s.createError = err
	return s
}

// WithGetError makes Get return err.
func (s *Store[T]) WithGetError(err error) *Store[T] {
	s.getError = err
	return s
}

// WithUpdateError makes Update return err.
func (s *Store[T]) WithUpdateError(err error) *Store[T] {
	s.updateError = err
	return s
}

// WithDeleteError makes Delete return err.
func (s *Store[T]) WithDeleteError(err error) *Store[T] {
	s.deleteError = err
	return s
}

// WithCountError makes Count return err.
func (s *Store[T]) WithCountError(err error) *Store[T] {
	s.countError = err
	return s
}

// WithPageError makes Page return err.
func (s *Store[T]) WithPageError(err error) *Store[T] {
	s.pageError = err
	return s
}

// Create stores entity unless its key is already taken.
func (s *Store[T]) Create(ctx context.Context, entity *T) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, entityerrors.NewCancelledError("create", err)
	}
	if s.createError != nil {
		return false, s.createError
	}

	key, err := s.key(entity)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; exists {
		return false, nil
	}
	s.data[key] = *entity
	s.order = append(s.order, key)
	return true, nil
}

// Get returns the first stored entity satisfying spec.
func (s *Store[T]) Get(ctx context.Context, spec query.Spec[T]) (*T, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, entityerrors.NewCancelledError("get", err)
	}
	if s.getError != nil {
		return nil, false, s.getError
	}

	matches := query.Filter(s.snapshot(), spec)
	if len(matches) == 0 {
		return nil, false, nil
	}
	return matches[0], true, nil
}

// Update replaces the stored entity sharing entity's key.
func (s *Store[T]) Update(ctx context.Context, entity *T) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, entityerrors.NewCancelledError("update", err)
	}
	if s.updateError != nil {
		return false, s.updateError
	}

	key, err := s.key(entity)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists {
		return false, nil
	}
	s.data[key] = *entity
	return true, nil
}

// Delete removes every entity satisfying spec.
func (s *Store[T]) Delete(ctx context.Context, spec query.Spec[T]) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, entityerrors.NewCancelledError("delete", err)
	}
	if s.deleteError != nil {
		return false, s.deleteError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	kept := s.order[:0]
	for _, key := range s.order {
		entity := s.data[key]
		if spec == nil || spec.IsSatisfiedBy(&entity) {
			delete(s.data, key)
			removed = true
			continue
		}
		kept = append(kept, key)
	}
	s.order = kept
	return removed, nil
}

// Count returns the number of entities satisfying spec.
func (s *Store[T]) Count(ctx context.Context, spec query.Spec[T]) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, entityerrors.NewCancelledError("count", err)
	}
	if s.countError != nil {
		return 0, s.countError
	}
	return int64(len(query.Filter(s.snapshot(), spec))), nil
}

// Page returns the window [offset, offset+limit) of the entities satisfying
// spec, ordered by sort.
func (s *Store[T]) Page(ctx context.Context, offset, limit int, spec query.Spec[T], sort query.Sort[T]) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, entityerrors.NewCancelledError("page", err)
	}
	if s.pageError != nil {
		return nil, s.pageError
	}

	matches := query.Filter(s.snapshot(), spec)
	sort.Apply(matches)
	return slices.Clone(query.Window(matches, offset, limit)), nil
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Clear removes all data.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]T)
	s.order = nil
}

// snapshot copies the stored entities in insertion order.
func (s *Store[T]) snapshot() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*T, 0, len(s.order))
	for _, key := range s.order {
		entity := s.data[key]
		items = append(items, &entity)
	}
	return items
}

func (s *Store[T]) key(entity *T) (string, error) {
	if entity == nil {
		return "", entityerrors.NewArgumentError("entity")
	}
	if s.keyFunc == nil {
		return "", entityerrors.NewValidationError("key", "no key function configured")
	}
	key := s.keyFunc(entity)
	if key == "" {
		return "", entityerrors.NewValidationError("key", "unable to extract key from entity")
	}
	return key, nil
}
