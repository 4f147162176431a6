/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/paging"
)

// Struct validates values through their `validate` struct tags.
type Struct[V any] struct {
	validate *validator.Validate
}

// NewStruct returns a tag driven Validator. A nil validate uses a fresh
// validator.Validate with required-struct checking enabled.
func NewStruct[V any](validate *validator.Validate) *Struct[V] {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return &Struct[V]{validate: validate}
}

// Validate runs the tag rules. Every failing field becomes one
// errors.ValidationError; several are joined.
func (s *Struct[V]) Validate(ctx context.Context, v V) error {
	err := s.validate.StructCtx(ctx, v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return entityerrors.NewValidationError("", err.Error())
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, entityerrors.NewValidationError(fe.Field(), describe(fe)))
	}
	return errors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("failed on %q rule (%s)", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed on %q rule", fe.Tag())
}

// PageFilter bounds the offset and limit of a paging filter.
// A maxLimit of zero or less leaves the limit unbounded.
func PageFilter(maxLimit int) Validator[paging.Filter] {
	return Func[paging.Filter](func(_ context.Context, f paging.Filter) error {
		if f.Offset < 0 {
			return entityerrors.NewValidationError("offset", "must not be negative")
		}
		if f.Limit < 0 {
			return entityerrors.NewValidationError("limit", "must not be negative")
		}
		if maxLimit > 0 && f.Limit > maxLimit {
			return entityerrors.NewValidationError("limit", fmt.Sprintf("must not exceed %d", maxLimit))
		}
		return nil
	})
}
