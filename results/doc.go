/*
Package results defines the outcome values returned by the entity manager and
the builders that produce them.

Three shapes exist:
  - Result[T]: single-entity outcome with an optional payload
  - OpResult: outcome of an operation without payload (update, delete)
  - PageResult[T]: one page of entities with total and matched counts

Result and OpResult succeed exactly when no error message is set. A
PageResult carries no success flag; an empty page is not an error.

Builders are obtained from a BuilderFactory and are fluent:

	res := results.NewBuilderFactory[Train]().
	    ResultBuilder().
	    WithPayload(train).
	    WithError("").
	    Build()

Each builder call to the factory returns a fresh builder; built values are
immutable.
*/
package results
