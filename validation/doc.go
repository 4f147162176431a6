/*
Package validation defines the validators the entity manager runs before
create, update and paged listing, plus ready-made implementations.

A Validator accepts its input by returning nil and rejects it by returning an
error; the manager propagates that error to its caller unchanged.

	validators := validation.NewFactory[Train](
	    validation.NewStruct[*Train](nil),   // `validate` struct tags
	    validation.NewStruct[*Train](nil),
	    validation.PageFilter(100),          // offset >= 0, 0 <= limit <= 100
	)

Struct uses github.com/go-playground/validator/v10 and reports each failing
field as an errors.ValidationError.
*/
package validation
