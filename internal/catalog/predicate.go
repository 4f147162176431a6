/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"strings"

	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/query"
)

// PredicateSpecs builds the in-process descriptors used by the memory and
// badger engines.
type PredicateSpecs struct{}

var _ query.Factory[Train, query.Spec[Train], query.Sort[Train]] = PredicateSpecs{}

func (PredicateSpecs) DefaultSpec() query.Spec[Train] {
	return query.All[Train]()
}

func (PredicateSpecs) ReadSpec(entity *Train) query.Spec[Train] {
	id := entity.ID
	return query.Where(func(t *Train) bool { return t.ID == id })
}

func (s PredicateSpecs) DeleteSpec(entity *Train) query.Spec[Train] {
	return s.ReadSpec(entity)
}

// PageSpec matches trains whose reference contains the search criteria.
func (PredicateSpecs) PageSpec(filter paging.Filter) query.Spec[Train] {
	criteria := filter.SearchCriteria
	return query.Where(func(t *Train) bool { return strings.Contains(t.Reference, criteria) })
}

func (PredicateSpecs) SortSpec(filter paging.Filter) query.Sort[Train] {
	asc := filter.SortAscending()
	switch field := sortField(filter.OrderBy); field {
	case SortByID:
		return query.By(field, asc, func(t *Train) string { return t.ID.String() })
	case SortByName:
		return query.By(field, asc, func(t *Train) string { return t.Name })
	default:
		return query.By(field, asc, func(t *Train) string { return t.Reference })
	}
}
