/*
Package badgerstore provides a BadgerDB implementation of datastore.Repository.

Entities are stored as JSON values under "<prefix>:<key>", so several entity
types can share one database. Filtering and sorting use the in-process
descriptors of package query:

	db, err := badgerstore.Open(badgerstore.Options{Path: "./data"})
	store, err := badgerstore.New[Train](db, "train", func(t *Train) string { return t.ID })

	n, err := store.Count(ctx, query.Where(func(t *Train) bool { return t.Active }))

Badger's own log output is routed to log/slog.
*/
package badgerstore
