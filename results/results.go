/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package results

import "encoding/json"

// Result is the outcome of an operation producing a single entity.
type Result[T any] struct {
	payload      *T
	errorMessage string
}

// IsSucceeded reports whether no error message was set.
func (r Result[T]) IsSucceeded() bool {
	return r.errorMessage == ""
}

// Payload returns the entity carried by the result, if any.
func (r Result[T]) Payload() (*T, bool) {
	return r.payload, r.payload != nil
}

// ErrorMessage returns the failure description, empty on success.
func (r Result[T]) ErrorMessage() string {
	return r.errorMessage
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		IsSucceeded  bool   `json:"isSucceeded"`
		Payload      *T     `json:"payload,omitempty"`
		ErrorMessage string `json:"errorMessage,omitempty"`
	}{r.IsSucceeded(), r.payload, r.errorMessage})
}

// OpResult is the outcome of an operation without payload.
type OpResult struct {
	errorMessage string
}

// IsSucceeded reports whether no error message was set.
func (r OpResult) IsSucceeded() bool {
	return r.errorMessage == ""
}

// ErrorMessage returns the failure description, empty on success.
func (r OpResult) ErrorMessage() string {
	return r.errorMessage
}

func (r OpResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		IsSucceeded  bool   `json:"isSucceeded"`
		ErrorMessage string `json:"errorMessage,omitempty"`
	}{r.IsSucceeded(), r.errorMessage})
}

// PageResult bundles one page of entities with its count metadata.
// Count is the number of entities under the default scope, Matched the
// number under the filtered scope.
type PageResult[T any] struct {
	items   []*T
	count   int64
	matched int64
	offset  int
	limit   int
}

// Items returns the entities of the page.
func (p PageResult[T]) Items() []*T {
	return p.items
}

// Count returns the number of entities under the default scope.
func (p PageResult[T]) Count() int64 {
	return p.count
}

// Matched returns the number of entities under the filtered scope.
func (p PageResult[T]) Matched() int64 {
	return p.matched
}

// Offset returns the offset the page was requested with.
func (p PageResult[T]) Offset() int {
	return p.offset
}

// Limit returns the limit the page was requested with.
func (p PageResult[T]) Limit() int {
	return p.limit
}

func (p PageResult[T]) MarshalJSON() ([]byte, error) {
	items := p.items
	if items == nil {
		items = []*T{}
	}
	return json.Marshal(struct {
		Items   []*T  `json:"items"`
		Count   int64 `json:"count"`
		Matched int64 `json:"matched"`
		Offset  int   `json:"offset"`
		Limit   int   `json:"limit"`
	}{items, p.count, p.matched, p.offset, p.limit})
}
