/*
Package entitymanager provides a generic orchestration layer for entity
create, read, update, delete and paged listing over pluggable storage.

A Manager[T, Q, S] composes four collaborators, all injected at construction:
  - a datastore.Repository that persists entities
  - a validation.Factory supplying create, update and page validators
  - a results.BuilderFactory assembling outcome values
  - a query.Factory translating intents into the repository's descriptors

Every operation fails fast on a cancelled context and on nil arguments,
runs its validator, asks the query factory for descriptors, calls the
repository and builds the result. Repository refusals are soft failures
reported inside the result with a fixed message; validator and repository
errors are returned unchanged.

Key Features:
  - Type-safe operations using Go generics
  - Storage engines for memory, BadgerDB, DynamoDB and MySQL
  - Concurrent counts and page fetch in GetPage
  - Semantic error types for better error handling
  - Structured logging with log/slog and OpenTelemetry spans

Basic Usage:

	store := memory.New(func(t *Train) string { return t.ID })
	m, err := entitymanager.New[Train, query.Spec[Train], query.Sort[Train]](
	    store,
	    validation.NewFactory[Train](validation.NewStruct[*Train](nil), nil, validation.PageFilter(100)),
	    results.NewBuilderFactory[Train](),
	    trainSpecs{}, // query.Factory[Train, query.Spec[Train], query.Sort[Train]]
	)

	res, err := m.Create(ctx, &Train{ID: "1", Reference: "IC-501"})
	page, err := m.GetPage(ctx, &paging.Filter{Limit: 20, OrderBy: "reference", SortAs: paging.SortAscending})

Managers for several entity types can be kept in a Registry:

	r := entitymanager.NewRegistry()
	entitymanager.Register(r, "trains", m)
	trains, err := entitymanager.Lookup[Train, query.Spec[Train], query.Sort[Train]](r, "trains")
*/
package entitymanager
