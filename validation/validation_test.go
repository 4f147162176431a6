/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/paging"
)

type locomotive struct {
	ID        string `validate:"required"`
	Reference string `validate:"required,max=8"`
	Seats     int    `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	ctx := context.Background()
	v := NewStruct[*locomotive](nil)

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &locomotive{ID: "1", Reference: "IC-1"}))
	})

	t.Run("SingleField", func(t *testing.T) {
		err := v.Validate(ctx, &locomotive{ID: "1"})
		require.Error(t, err)
		assert.True(t, entityerrors.IsValidationError(err))

		var ve *entityerrors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Reference", ve.Field)
	})

	t.Run("SeveralFields", func(t *testing.T) {
		err := v.Validate(ctx, &locomotive{Reference: "much-too-long", Seats: -1})
		require.Error(t, err)
		assert.True(t, entityerrors.IsValidationError(err))
		assert.Contains(t, err.Error(), `"ID"`)
		assert.Contains(t, err.Error(), `"Reference"`)
		assert.Contains(t, err.Error(), `"Seats"`)
	})
}

func TestPageFilter(t *testing.T) {
	ctx := context.Background()
	v := PageFilter(50)

	tests := []struct {
		name    string
		filter  paging.Filter
		wantErr bool
	}{
		{name: "zero", filter: paging.Filter{}},
		{name: "within bounds", filter: paging.Filter{Offset: 10, Limit: 50}},
		{name: "negative offset", filter: paging.Filter{Offset: -1, Limit: 10}, wantErr: true},
		{name: "negative limit", filter: paging.Filter{Limit: -5}, wantErr: true},
		{name: "limit over max", filter: paging.Filter{Limit: 51}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.filter)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, entityerrors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
		})
	}

	require.NoError(t, PageFilter(0).Validate(ctx, paging.Filter{Limit: 100000}))
}

func TestFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("NilValidatorsAcceptEverything", func(t *testing.T) {
		f := NewFactory[locomotive](nil, nil, nil)
		assert.NoError(t, f.CreateValidator().Validate(ctx, &locomotive{}))
		assert.NoError(t, f.UpdateValidator().Validate(ctx, &locomotive{}))
		assert.NoError(t, f.PageValidator().Validate(ctx, paging.Filter{Limit: -1}))
	})

	t.Run("HandsOutGivenValidators", func(t *testing.T) {
		rejected := entityerrors.NewValidationError("ID", "taken")
		create := Func[*locomotive](func(context.Context, *locomotive) error { return rejected })
		f := NewFactory[locomotive](create, nil, PageFilter(10))

		assert.Same(t, rejected, f.CreateValidator().Validate(ctx, &locomotive{}))
		assert.NoError(t, f.UpdateValidator().Validate(ctx, &locomotive{}))
		assert.Error(t, f.PageValidator().Validate(ctx, paging.Filter{Limit: 11}))
	})
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	calls := 0
	count := Func[int](func(context.Context, int) error { calls++; return nil })
	reject := Func[int](func(context.Context, int) error { return entityerrors.NewValidationError("", "no") })

	err := Chain[int](count, reject, count).Validate(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "chain should stop at the first rejection")
}
