/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suparena/entitymanager"
	"github.com/suparena/entitymanager/config"
	"github.com/suparena/entitymanager/datastore"
	"github.com/suparena/entitymanager/datastore/badgerstore"
	"github.com/suparena/entitymanager/datastore/ddb"
	"github.com/suparena/entitymanager/datastore/memory"
	"github.com/suparena/entitymanager/datastore/sqlstore"
	"github.com/suparena/entitymanager/internal/catalog"
	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/query"
	"github.com/suparena/entitymanager/results"
	"github.com/suparena/entitymanager/storagemodels"
	"github.com/suparena/entitymanager/validation"
)

// trainManager is implemented by every entitymanager.Manager of catalog.Train,
// whatever its descriptor types.
type trainManager interface {
	Create(ctx context.Context, entity *catalog.Train) (results.Result[catalog.Train], error)
	Read(ctx context.Context, entity *catalog.Train) (results.Result[catalog.Train], error)
	Update(ctx context.Context, entity *catalog.Train) (results.OpResult, error)
	Delete(ctx context.Context, entity *catalog.Train) (results.OpResult, error)
	GetPage(ctx context.Context, filter *paging.Filter) (results.PageResult[catalog.Train], error)
}

type (
	predicateSpec = query.Spec[catalog.Train]
	predicateSort = query.Sort[catalog.Train]
)

var (
	_ trainManager = (*entitymanager.Manager[catalog.Train, predicateSpec, predicateSort])(nil)
	_ trainManager = (*entitymanager.Manager[catalog.Train, *storagemodels.QueryParams, storagemodels.Sort])(nil)
	_ trainManager = (*entitymanager.Manager[catalog.Train, sqlstore.Where, sqlstore.OrderBy])(nil)
)

// openTrains wires the train manager of the configured backend. The returned
// function releases the backend's resources.
func openTrains(ctx context.Context, cfg config.Config, logger *slog.Logger) (trainManager, func() error, error) {
	validators := catalog.Validators(cfg.Paging.MaxLimit)
	builders := results.NewBuilderFactory[catalog.Train]()
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		m, err := newManager[predicateSpec, predicateSort](memory.New(catalog.Key), validators, builders, catalog.PredicateSpecs{}, logger)
		return m, noop, err

	case config.BackendBadger:
		db, err := badgerstore.Open(badgerstore.Options{
			Path:     cfg.Badger.Path,
			InMemory: cfg.Badger.InMemory,
			Logger:   logger,
		})
		if err != nil {
			return nil, nil, err
		}
		store, err := badgerstore.New(db, "train", catalog.Key)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		m, err := newManager[predicateSpec, predicateSort](store, validators, builders, catalog.PredicateSpecs{}, logger)
		return m, db.Close, err

	case config.BackendDynamoDB:
		client, err := ddb.NewDynamoDBClient(ctx, cfg.DynamoDB.ClientConfig())
		if err != nil {
			return nil, nil, err
		}
		store, err := ddb.New[catalog.Train](client, cfg.DynamoDB.Table,
			ddb.WithLogger(logger),
			ddb.WithQueryOptions(cfg.DynamoDB.QueryOptions()...))
		if err != nil {
			return nil, nil, err
		}
		m, err := newManager[*storagemodels.QueryParams, storagemodels.Sort](store, validators, builders, catalog.DynamoDBSpecs{}, logger)
		return m, noop, err

	case config.BackendMySQL:
		db, err := sqlstore.OpenMySQL(ctx, cfg.MySQL.MySQLConfig())
		if err != nil {
			return nil, nil, err
		}
		if _, err := db.ExecContext(ctx, catalog.TrainsTable); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("create trains table: %w", err)
		}
		store, err := sqlstore.New[catalog.Train](db, catalog.TrainMapper{}, sqlstore.WithLogger(logger))
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		m, err := newManager[sqlstore.Where, sqlstore.OrderBy](store, validators, builders, catalog.SQLSpecs{}, logger)
		return m, db.Close, err
	}

	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func newManager[Q, S any](
	repo datastore.Repository[catalog.Train, Q, S],
	validators validation.Factory[catalog.Train],
	builders results.BuilderFactory[catalog.Train],
	specs query.Factory[catalog.Train, Q, S],
	logger *slog.Logger,
) (trainManager, error) {
	m, err := entitymanager.New[catalog.Train, Q, S](repo, validators, builders, specs,
		entitymanager.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return m, nil
}
