/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package results

// ResultBuilder accumulates the parts of a Result.
type ResultBuilder[T any] interface {
	WithPayload(payload *T) ResultBuilder[T]
	WithError(message string) ResultBuilder[T]
	Build() Result[T]
}

// OpResultBuilder accumulates the parts of an OpResult.
type OpResultBuilder interface {
	WithError(message string) OpResultBuilder
	Build() OpResult
}

// PageResultBuilder accumulates the parts of a PageResult.
type PageResultBuilder[T any] interface {
	WithCount(count int64) PageResultBuilder[T]
	WithMatched(matched int64) PageResultBuilder[T]
	WithItems(items []*T) PageResultBuilder[T]
	WithOffset(offset int) PageResultBuilder[T]
	WithLimit(limit int) PageResultBuilder[T]
	Build() PageResult[T]
}

// BuilderFactory hands out a fresh builder for each result shape.
type BuilderFactory[T any] interface {
	ResultBuilder() ResultBuilder[T]
	OpResultBuilder() OpResultBuilder
	PageResultBuilder() PageResultBuilder[T]
}

type builderFactory[T any] struct{}

// NewBuilderFactory returns the default BuilderFactory for entity type T.
func NewBuilderFactory[T any]() BuilderFactory[T] {
	return builderFactory[T]{}
}

func (builderFactory[T]) ResultBuilder() ResultBuilder[T] {
	return &resultBuilder[T]{}
}

func (builderFactory[T]) OpResultBuilder() OpResultBuilder {
	return &opResultBuilder{}
}

func (builderFactory[T]) PageResultBuilder() PageResultBuilder[T] {
	return &pageResultBuilder[T]{}
}

type resultBuilder[T any] struct {
	result Result[T]
}

func (b *resultBuilder[T]) WithPayload(payload *T) ResultBuilder[T] {
	b.result.payload = payload
	return b
}

func (b *resultBuilder[T]) WithError(message string) ResultBuilder[T] {
	b.result.errorMessage = message
	return b
}

func (b *resultBuilder[T]) Build() Result[T] {
	return b.result
}

type opResultBuilder struct {
	result OpResult
}

func (b *opResultBuilder) WithError(message string) OpResultBuilder {
	b.result.errorMessage = message
	return b
}

func (b *opResultBuilder) Build() OpResult {
	return b.result
}

type pageResultBuilder[T any] struct {
	result PageResult[T]
}

func (b *pageResultBuilder[T]) WithCount(count int64) PageResultBuilder[T] {
	b.result.count = count
	return b
}

func (b *pageResultBuilder[T]) WithMatched(matched int64) PageResultBuilder[T] {
	b.result.matched = matched
	return b
}

func (b *pageResultBuilder[T]) WithItems(items []*T) PageResultBuilder[T] {
	b.result.items = items
	return b
}

func (b *pageResultBuilder[T]) WithOffset(offset int) PageResultBuilder[T] {
	b.result.offset = offset
	return b
}

func (b *pageResultBuilder[T]) WithLimit(limit int) PageResultBuilder[T] {
	b.result.limit = limit
	return b
}

// Build copies the items so later changes to the caller's slice do not leak into the result.
func (b *pageResultBuilder[T]) Build() PageResult[T] {
	res := b.result
	if res.items != nil {
		res.items = append([]*T(nil), res.items...)
	}
	return res
}
