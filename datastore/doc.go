/*
Package datastore defines the persistence contract behind the entity manager.

The main interface is Repository[T, Q, S], which provides create, read,
update, delete, count and page operations for an entity type T. Q and S are
the filter and sort descriptors of the engine:

	type Repository[T, Q, S any] interface {
	    Create(ctx context.Context, entity *T) (bool, error)
	    Get(ctx context.Context, spec Q) (*T, bool, error)
	    Update(ctx context.Context, entity *T) (bool, error)
	    Delete(ctx context.Context, spec Q) (bool, error)
	    Count(ctx context.Context, spec Q) (int64, error)
	    Page(ctx context.Context, offset, limit int, spec Q, sort S) ([]*T, error)
	}

Engines:

  - memory: map-backed store evaluating query.Spec predicates, for tests and demos
  - badgerstore: embedded key-value store on BadgerDB
  - ddb: Amazon DynamoDB single-table store driven by registry index maps
  - sqlstore: database/sql store with a MySQL dialect

Soft failures (entity already exists, nothing matched) are reported as false
with a nil error. Errors are reserved for infrastructure faults and
cancellation.
*/
package datastore
