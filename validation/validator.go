/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validation

import (
	"context"

	"github.com/suparena/entitymanager/paging"
)

// Validator checks one input. It returns nil when the input is acceptable and
// an error, usually matching errors.ErrValidationFailed, when it is not.
type Validator[V any] interface {
	Validate(ctx context.Context, v V) error
}

// Func adapts an ordinary function to the Validator interface.
type Func[V any] func(ctx context.Context, v V) error

// Validate calls f(ctx, v).
func (f Func[V]) Validate(ctx context.Context, v V) error {
	return f(ctx, v)
}

// Noop returns a Validator accepting every input.
func Noop[V any]() Validator[V] {
	return Func[V](func(context.Context, V) error { return nil })
}

// Chain runs validators in order and stops at the first rejection.
func Chain[V any](validators ...Validator[V]) Validator[V] {
	return Func[V](func(ctx context.Context, v V) error {
		for _, val := range validators {
			if err := val.Validate(ctx, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Factory supplies the validators the entity manager runs before create,
// update and paged listing.
type Factory[T any] interface {
	CreateValidator() Validator[*T]
	UpdateValidator() Validator[*T]
	PageValidator() Validator[paging.Filter]
}

type factory[T any] struct {
	create Validator[*T]
	update Validator[*T]
	page   Validator[paging.Filter]
}

// NewFactory returns a Factory handing out the given validators.
// A nil validator is replaced by one accepting every input.
func NewFactory[T any](create, update Validator[*T], page Validator[paging.Filter]) Factory[T] {
	if create == nil {
		create = Noop[*T]()
	}
	if update == nil {
		update = Noop[*T]()
	}
	if page == nil {
		page = Noop[paging.Filter]()
	}
	return &factory[T]{create: create, update: update, page: page}
}

func (f *factory[T]) CreateValidator() Validator[*T] { return f.create }

func (f *factory[T]) UpdateValidator() Validator[*T] { return f.update }

func (f *factory[T]) PageValidator() Validator[paging.Filter] { return f.page }
