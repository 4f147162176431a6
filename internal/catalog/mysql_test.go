/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entitymanager"
	"github.com/suparena/entitymanager/datastore/sqlstore"
	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/results"
)

const selectTrains = "SELECT `id`, `reference`, `name`, `created_at`, `updated_at` FROM `trains`"

func trainRows(trains ...*Train) *sqlmock.Rows {
	rows := sqlmock.NewRows(TrainMapper{}.Columns())
	for _, t := range trains {
		rows.AddRow(t.ID.String(), t.Reference, t.Name, time.Time(t.CreatedAt), time.Time(t.UpdatedAt))
	}
	return rows
}

func TestSQLSpecs(t *testing.T) {
	specs := SQLSpecs{}
	tr := NewTrain("IC-501", "")

	assert.Empty(t, specs.DefaultSpec().Clause)
	assert.Equal(t, sqlstore.Eq("id", tr.ID.String()), specs.ReadSpec(tr))
	assert.Equal(t, specs.ReadSpec(tr), specs.DeleteSpec(tr))
	assert.Equal(t, sqlstore.Like("reference", "IC"), specs.PageSpec(paging.Filter{SearchCriteria: "IC"}))
	assert.Equal(t, sqlstore.OrderBy{Column: "id", Ascending: true},
		specs.SortSpec(paging.Filter{OrderBy: "ID", SortAs: "asc"}))
	assert.Equal(t, sqlstore.OrderBy{Column: "reference"}, specs.SortSpec(paging.Filter{}))
}

func TestManagerOverMySQL(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	store, err := sqlstore.New[Train](db, TrainMapper{})
	require.NoError(t, err)
	m, err := entitymanager.New[Train, sqlstore.Where, sqlstore.OrderBy](
		store, Validators(50), results.NewBuilderFactory[Train](), SQLSpecs{})
	require.NoError(t, err)

	a := NewTrain("IC-501", "Zephyr")
	b := NewTrain("IC-77", "Meridian")

	t.Run("Read", func(t *testing.T) {
		mock.ExpectQuery(selectTrains + " WHERE `id` = ? LIMIT 1").
			WithArgs(a.ID.String()).
			WillReturnRows(trainRows(a))

		res, err := m.Read(ctx, &Train{ID: a.ID})
		require.NoError(t, err)
		got, ok := res.Payload()
		require.True(t, ok)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, "Zephyr", got.Name)
		assert.True(t, time.Time(a.CreatedAt).Equal(time.Time(got.CreatedAt)))
	})

	t.Run("GetPage", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT(*) FROM `trains`").
			WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(5))
		mock.ExpectQuery("SELECT COUNT(*) FROM `trains` WHERE `reference` LIKE ?").
			WithArgs("%IC%").
			WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
		mock.ExpectQuery(selectTrains+" WHERE `reference` LIKE ? ORDER BY `reference` DESC LIMIT ? OFFSET ?").
			WithArgs("%IC%", 10, 0).
			WillReturnRows(trainRows(b, a))

		page, err := m.GetPage(ctx, &paging.Filter{Limit: 10, SearchCriteria: "IC"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), page.Count())
		assert.Equal(t, int64(2), page.Matched())
		require.Len(t, page.Items(), 2)
		assert.Equal(t, "IC-77", page.Items()[0].Reference)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
