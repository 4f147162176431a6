// Package catalog holds the Train sample entity and its wiring for every
// storage engine: predicate specs, DynamoDB keys and specs, and the MySQL
// mapper and specs.
package catalog
