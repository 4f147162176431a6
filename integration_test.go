//go:build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitymanager_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entitymanager"
	"github.com/suparena/entitymanager/datastore/ddb"
	"github.com/suparena/entitymanager/datastore/sqlstore"
	"github.com/suparena/entitymanager/internal/catalog"
	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/results"
	"github.com/suparena/entitymanager/storagemodels"
)

func init() {
	_ = godotenv.Load()
}

func newDynamoDBTrains(t *testing.T) *entitymanager.Manager[catalog.Train, *storagemodels.QueryParams, storagemodels.Sort] {
	t.Helper()
	tableName := os.Getenv("DDB_TEST_TABLE_NAME")
	if tableName == "" {
		t.Skip("DDB_TEST_TABLE_NAME not set, skipping integration test")
	}

	client, err := ddb.NewDynamoDBClient(context.Background(), ddb.ClientConfig{
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Region:    os.Getenv("AWS_REGION"),
		Endpoint:  os.Getenv("DDB_TEST_ENDPOINT"),
	})
	require.NoError(t, err)

	store, err := ddb.New[catalog.Train](client, tableName)
	require.NoError(t, err)

	m, err := entitymanager.New[catalog.Train, *storagemodels.QueryParams, storagemodels.Sort](
		store, catalog.Validators(100), results.NewBuilderFactory[catalog.Train](), catalog.DynamoDBSpecs{})
	require.NoError(t, err)
	return m
}

func newMySQLTrains(t *testing.T) *entitymanager.Manager[catalog.Train, sqlstore.Where, sqlstore.OrderBy] {
	t.Helper()
	database := os.Getenv("MYSQL_TEST_DATABASE")
	if database == "" {
		t.Skip("MYSQL_TEST_DATABASE not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := sqlstore.OpenMySQL(ctx, sqlstore.MySQLConfig{
		User:     os.Getenv("MYSQL_TEST_USER"),
		Password: os.Getenv("MYSQL_TEST_PASSWORD"),
		Addr:     os.Getenv("MYSQL_TEST_ADDR"),
		Database: database,
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, catalog.TrainsTable)
	require.NoError(t, err)

	store, err := sqlstore.New[catalog.Train](db, catalog.TrainMapper{})
	require.NoError(t, err)

	m, err := entitymanager.New[catalog.Train, sqlstore.Where, sqlstore.OrderBy](
		store, catalog.Validators(100), results.NewBuilderFactory[catalog.Train](), catalog.SQLSpecs{})
	require.NoError(t, err)
	return m
}

type trainManager interface {
	Create(context.Context, *catalog.Train) (results.Result[catalog.Train], error)
	Read(context.Context, *catalog.Train) (results.Result[catalog.Train], error)
	Update(context.Context, *catalog.Train) (results.OpResult, error)
	Delete(context.Context, *catalog.Train) (results.OpResult, error)
	GetPage(context.Context, *paging.Filter) (results.PageResult[catalog.Train], error)
}

func exerciseTrains(t *testing.T, m trainManager) {
	ctx := context.Background()
	prefix := fmt.Sprintf("IT%d-", time.Now().UnixNano())

	a := catalog.NewTrain(prefix+"A", "Zephyr")
	b := catalog.NewTrain(prefix+"B", "Meridian")
	for _, tr := range []*catalog.Train{a, b} {
		res, err := m.Create(ctx, tr)
		require.NoError(t, err)
		require.True(t, res.IsSucceeded())
	}
	t.Cleanup(func() {
		_, _ = m.Delete(context.Background(), a)
		_, _ = m.Delete(context.Background(), b)
	})

	dup, err := m.Create(ctx, a)
	require.NoError(t, err)
	assert.False(t, dup.IsSucceeded())

	read, err := m.Read(ctx, &catalog.Train{ID: a.ID})
	require.NoError(t, err)
	got, ok := read.Payload()
	require.True(t, ok)
	assert.Equal(t, a.Reference, got.Reference)

	b.Name = "Meridian Night"
	b.Touch()
	upd, err := m.Update(ctx, b)
	require.NoError(t, err)
	assert.True(t, upd.IsSucceeded())

	page, err := m.GetPage(ctx, &paging.Filter{Limit: 10, SearchCriteria: prefix, SortAs: paging.SortAscending})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Matched())
	require.Len(t, page.Items(), 2)
	assert.Equal(t, a.Reference, page.Items()[0].Reference)
	assert.Equal(t, "Meridian Night", page.Items()[1].Name)

	del, err := m.Delete(ctx, a)
	require.NoError(t, err)
	assert.True(t, del.IsSucceeded())

	missing, err := m.Read(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, entitymanager.NotFoundMessage, missing.ErrorMessage())
}

func TestIntegrationDynamoDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	exerciseTrains(t, newDynamoDBTrains(t))
}

func TestIntegrationMySQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	exerciseTrains(t, newMySQLTrains(t))
}
