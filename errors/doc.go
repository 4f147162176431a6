/*
Package errors provides semantic error types for the entitymanager library.

The package defines the error taxonomy of the manager and its storage engines.
Every type can be checked with the standard errors.Is() function or the
provided helper functions.

Faults raised by the manager before any collaborator runs:

	var (
	    ErrInvalidArgument  = errors.New("invalid argument")
	    ErrCancelled        = errors.New("operation cancelled")
	)

Faults raised by validators and storage engines:

	var (
	    ErrValidationFailed = errors.New("validation failed")
	    ErrNotFound         = errors.New("entity not found")
	    ErrAlreadyExists    = errors.New("entity already exists")
	    ErrConditionFailed  = errors.New("condition check failed")
	    ErrNoIndexMap       = errors.New("no index map found for type")
	)

A repository reporting a failed create, update or delete, or a read that
finds nothing, is not an error at all: the manager encodes those outcomes
in the returned result value.

Usage:

	res, err := trains.Create(ctx, train)
	if err != nil {
	    if errors.IsValidationError(err) {
	        // reject the request
	    }
	    return err
	}
	if !res.IsSucceeded() {
	    log.Println(res.ErrorMessage())
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
