/*
Package ddb provides a DynamoDB implementation of datastore.Repository.

The Store supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "TRAIN#{ID}")
  - Global Secondary Index (GSI) queries through QueryBuilder
  - Conditional puts: create requires a new primary key, update an existing one
  - Automatic EntityType injection and filtering
  - Query retries for throttling and transient errors

Its filter descriptor is *storagemodels.QueryParams and its sort descriptor
storagemodels.Sort.

Macro Expansion:
Keys use macros that are replaced with entity attribute values:

	registry.RegisterIndexMap[Train](map[string]string{
	    "PK":  "TRAIN#{ID}",      // Becomes "TRAIN#123"
	    "SK":  "TRAIN#{ID}",
	    "PK1": "TRAINS",          // Static value
	    "SK1": "REF#{Reference}",
	})

Queries:

	params, err := ddb.NewQueryBuilder[Train]().
	    OnIndex("GSI1").
	    WithPartitionKey("all").
	    WithSortKeyPrefix("IC").
	    Build()

	n, err := store.Count(ctx, params)
	page, err := store.Page(ctx, 0, 20, params, storagemodels.Sort{Ascending: true})

Count and Page follow LastEvaluatedKey across DynamoDB pages. Offsets are
applied by skipping items client side.
*/
package ddb
