/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package results_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entitymanager/results"
)

type train struct {
	ID        int    `json:"id"`
	Reference string `json:"reference"`
}

func TestResultBuilder(t *testing.T) {
	factory := results.NewBuilderFactory[train]()

	t.Run("SucceededWithPayload", func(t *testing.T) {
		tr := &train{ID: 1, Reference: "IC-1"}
		res := factory.ResultBuilder().WithPayload(tr).WithError("").Build()

		assert.True(t, res.IsSucceeded())
		assert.Empty(t, res.ErrorMessage())
		payload, ok := res.Payload()
		require.True(t, ok)
		assert.Same(t, tr, payload)
	})

	t.Run("FailedWithoutPayload", func(t *testing.T) {
		res := factory.ResultBuilder().WithError("Entity not found!").Build()

		assert.False(t, res.IsSucceeded())
		assert.Equal(t, "Entity not found!", res.ErrorMessage())
		_, ok := res.Payload()
		assert.False(t, ok)
	})

	t.Run("FailedKeepsPayload", func(t *testing.T) {
		tr := &train{ID: 2}
		res := factory.ResultBuilder().WithPayload(tr).WithError("boom").Build()

		assert.False(t, res.IsSucceeded())
		payload, ok := res.Payload()
		require.True(t, ok)
		assert.Equal(t, 2, payload.ID)
	})

	t.Run("FreshBuilderPerCall", func(t *testing.T) {
		factory.ResultBuilder().WithError("first")
		res := factory.ResultBuilder().Build()
		assert.True(t, res.IsSucceeded())
	})
}

func TestOpResultBuilder(t *testing.T) {
	factory := results.NewBuilderFactory[train]()

	ok := factory.OpResultBuilder().WithError("").Build()
	assert.True(t, ok.IsSucceeded())

	failed := factory.OpResultBuilder().WithError("Something was wrong with the update!").Build()
	assert.False(t, failed.IsSucceeded())
	assert.Equal(t, "Something was wrong with the update!", failed.ErrorMessage())
}

func TestPageResultBuilder(t *testing.T) {
	factory := results.NewBuilderFactory[train]()

	items := []*train{{ID: 1}, {ID: 2}}
	page := factory.PageResultBuilder().
		WithCount(10).
		WithMatched(4).
		WithItems(items).
		WithOffset(2).
		WithLimit(2).
		Build()

	assert.Equal(t, int64(10), page.Count())
	assert.Equal(t, int64(4), page.Matched())
	assert.Equal(t, 2, page.Offset())
	assert.Equal(t, 2, page.Limit())
	require.Len(t, page.Items(), 2)

	// the built page does not alias the caller's slice
	items[0] = &train{ID: 99}
	assert.Equal(t, 1, page.Items()[0].ID)
}

func TestResultJSON(t *testing.T) {
	factory := results.NewBuilderFactory[train]()

	data, err := json.Marshal(factory.ResultBuilder().WithPayload(&train{ID: 7, Reference: "R"}).Build())
	require.NoError(t, err)
	assert.JSONEq(t, `{"isSucceeded":true,"payload":{"id":7,"reference":"R"}}`, string(data))

	data, err = json.Marshal(factory.OpResultBuilder().WithError("nope").Build())
	require.NoError(t, err)
	assert.JSONEq(t, `{"isSucceeded":false,"errorMessage":"nope"}`, string(data))

	data, err = json.Marshal(factory.PageResultBuilder().WithLimit(5).Build())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"count":0,"matched":0,"offset":0,"limit":5}`, string(data))
}
