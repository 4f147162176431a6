/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package paging defines the filter describing one page of a listing query.
package paging

import "strings"

const (
	// SortAscending requests ascending order of query results
	SortAscending = "ASC"

	// SortDescending requests descending order of query results
	SortDescending = "DESC"
)

// Filter carries the common criteria of a paged listing query.
// SearchCriteria and OrderBy are interpreted by the entity's query factory.
type Filter struct {
	Offset         int    `json:"offset" yaml:"offset" validate:"gte=0"`
	Limit          int    `json:"limit" yaml:"limit" validate:"gte=0"`
	SearchCriteria string `json:"searchCriteria,omitempty" yaml:"searchCriteria,omitempty"`
	OrderBy        string `json:"orderBy,omitempty" yaml:"orderBy,omitempty"`
	SortAs         string `json:"sortAs,omitempty" yaml:"sortAs,omitempty"`
}

// SortAscending reports whether results must be sorted ascending.
// Only SortAscending, in any case, selects ascending; everything else, the
// empty string included, means descending.
func (f Filter) SortAscending() bool {
	return strings.EqualFold(f.SortAs, SortAscending)
}
