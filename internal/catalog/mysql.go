/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"time"

	"github.com/suparena/entitymanager/datastore/sqlstore"
	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/query"
)

// TrainsTable is the DDL of the trains table used by the mysql backend.
const TrainsTable = "CREATE TABLE IF NOT EXISTS `trains` (" +
	"`id` CHAR(36) NOT NULL PRIMARY KEY, " +
	"`reference` VARCHAR(64) NOT NULL, " +
	"`name` VARCHAR(128) NOT NULL DEFAULT '', " +
	"`created_at` DATETIME(3) NULL, " +
	"`updated_at` DATETIME(3) NULL, " +
	"KEY `idx_trains_reference` (`reference`))"

// TrainMapper maps Train onto the trains table.
type TrainMapper struct{}

var _ sqlstore.Mapper[Train] = TrainMapper{}

func (TrainMapper) Table() string     { return "trains" }
func (TrainMapper) KeyColumn() string { return "id" }

func (TrainMapper) Columns() []string {
	return []string{"id", "reference", "name", "created_at", "updated_at"}
}

func (TrainMapper) Values(t *Train) []any {
	return []any{t.ID.String(), t.Reference, t.Name, time.Time(t.CreatedAt), time.Time(t.UpdatedAt)}
}

func (TrainMapper) Key(t *Train) any { return t.ID.String() }

func (TrainMapper) Scan(row sqlstore.Scanner) (*Train, error) {
	t := &Train{}
	if err := row.Scan(&t.ID, &t.Reference, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// SQLSpecs builds the Where and OrderBy descriptors of the sql engine.
type SQLSpecs struct{}

var _ query.Factory[Train, sqlstore.Where, sqlstore.OrderBy] = SQLSpecs{}

func (SQLSpecs) DefaultSpec() sqlstore.Where { return sqlstore.Where{} }

func (SQLSpecs) ReadSpec(entity *Train) sqlstore.Where {
	return sqlstore.Eq("id", entity.ID.String())
}

func (s SQLSpecs) DeleteSpec(entity *Train) sqlstore.Where { return s.ReadSpec(entity) }

func (SQLSpecs) PageSpec(filter paging.Filter) sqlstore.Where {
	return sqlstore.Like("reference", filter.SearchCriteria)
}

func (SQLSpecs) SortSpec(filter paging.Filter) sqlstore.OrderBy {
	return sqlstore.OrderBy{Column: sortField(filter.OrderBy), Ascending: filter.SortAscending()}
}
