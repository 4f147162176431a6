/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"cmp"
	"slices"
)

// Spec is a predicate over entities, evaluated in process by the memory and
// badger engines.
type Spec[T any] interface {
	IsSatisfiedBy(entity *T) bool
}

// SpecFunc adapts a function to the Spec interface.
type SpecFunc[T any] func(entity *T) bool

func (f SpecFunc[T]) IsSatisfiedBy(entity *T) bool {
	return f(entity)
}

// All matches every entity.
func All[T any]() Spec[T] {
	return SpecFunc[T](func(*T) bool { return true })
}

// Where matches entities for which fn returns true.
func Where[T any](fn func(entity *T) bool) Spec[T] {
	return SpecFunc[T](fn)
}

// AndSpec combines two specifications with AND logic.
type AndSpec[T any] struct {
	Left  Spec[T]
	Right Spec[T]
}

func (s AndSpec[T]) IsSatisfiedBy(entity *T) bool {
	return s.Left.IsSatisfiedBy(entity) && s.Right.IsSatisfiedBy(entity)
}

// OrSpec combines two specifications with OR logic.
type OrSpec[T any] struct {
	Left  Spec[T]
	Right Spec[T]
}

func (s OrSpec[T]) IsSatisfiedBy(entity *T) bool {
	return s.Left.IsSatisfiedBy(entity) || s.Right.IsSatisfiedBy(entity)
}

// NotSpec negates a specification.
type NotSpec[T any] struct {
	Spec Spec[T]
}

func (s NotSpec[T]) IsSatisfiedBy(entity *T) bool {
	return !s.Spec.IsSatisfiedBy(entity)
}

// And returns left AND right.
func And[T any](left, right Spec[T]) Spec[T] {
	return AndSpec[T]{Left: left, Right: right}
}

// Or returns left OR right.
func Or[T any](left, right Spec[T]) Spec[T] {
	return OrSpec[T]{Left: left, Right: right}
}

// Not returns the negation of spec.
func Not[T any](spec Spec[T]) Spec[T] {
	return NotSpec[T]{Spec: spec}
}

// Sort orders entities by one field.
type Sort[T any] struct {
	// Field names the sort key, for logging.
	Field string
	// Ascending selects ascending order; descending otherwise.
	Ascending bool
	// Compare orders two entities ascending. A nil Compare keeps storage order.
	Compare func(a, b *T) int
}

// By builds a Sort comparing the key returned by key.
func By[T any, K cmp.Ordered](field string, ascending bool, key func(*T) K) Sort[T] {
	return Sort[T]{
		Field:     field,
		Ascending: ascending,
		Compare: func(a, b *T) int {
			return cmp.Compare(key(a), key(b))
		},
	}
}

// Apply sorts items in place, honouring the direction. The sort is stable.
func (s Sort[T]) Apply(items []*T) {
	if s.Compare == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b *T) int {
		if s.Ascending {
			return s.Compare(a, b)
		}
		return s.Compare(b, a)
	})
}

// Filter returns the items satisfying spec, in order. A nil spec matches everything.
func Filter[T any](items []*T, spec Spec[T]) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if spec == nil || spec.IsSatisfiedBy(item) {
			out = append(out, item)
		}
	}
	return out
}

// Window returns items[offset:offset+limit], clamped to the slice bounds.
func Window[T any](items []*T, offset, limit int) []*T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || limit <= 0 {
		return []*T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
