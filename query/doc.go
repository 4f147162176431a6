/*
Package query defines how the entity manager asks for query descriptors and
provides in-process predicate descriptors.

Factory[T, Q, S] is implemented once per entity type. Q and S are whatever
the paired repository understands:

	engine            Q                            S
	memory, badger    query.Spec[T]                query.Sort[T]
	ddb               *storagemodels.QueryParams   storagemodels.Sort
	sqlstore          sqlstore.Where               sqlstore.OrderBy

Predicate specifications compose:

	active := query.Where(func(t *Train) bool { return t.Active })
	byRef := query.Where(func(t *Train) bool { return strings.Contains(t.Reference, q) })
	spec := query.And(active, byRef)

	sort := query.By("Reference", filter.SortAscending(), func(t *Train) string {
	    return t.Reference
	})
*/
package query
