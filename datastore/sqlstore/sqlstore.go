/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/suparena/entitymanager/datastore"
	entityerrors "github.com/suparena/entitymanager/errors"
)

const mysqlDuplicateEntry = 1062

// Store implements datastore.Repository on a SQL table described by a Mapper.
type Store[T any] struct {
	db     *sql.DB
	mapper Mapper[T]
	logger *slog.Logger
}

var _ datastore.Repository[struct{}, Where, OrderBy] = (*Store[struct{}])(nil)

// Option configures a Store.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store on db.
func New[T any](db *sql.DB, mapper Mapper[T], opts ...Option) (*Store[T], error) {
	if db == nil {
		return nil, entityerrors.NewArgumentError("db")
	}
	if mapper == nil {
		return nil, entityerrors.NewArgumentError("mapper")
	}
	if !slices.Contains(mapper.Columns(), mapper.KeyColumn()) {
		return nil, entityerrors.NewValidationError("mapper", "key column must be one of the columns")
	}

	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Store[T]{db: db, mapper: mapper, logger: s.logger}, nil
}

// Create inserts entity. Returns false when the primary key is taken.
func (s *Store[T]) Create(ctx context.Context, entity *T) (bool, error) {
	if entity == nil {
		return false, entityerrors.NewArgumentError("entity")
	}

	columns := s.mapper.Columns()
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(s.mapper.Table()), quoteAll(columns), placeholders(len(columns)))

	if _, err := s.db.ExecContext(ctx, stmt, s.mapper.Values(entity)...); err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			s.logger.DebugContext(ctx, "insert hit duplicate key", slog.String("table", s.mapper.Table()))
			return false, nil
		}
		return false, fmt.Errorf("insert into %s: %w", s.mapper.Table(), err)
	}
	return true, nil
}

// Get returns the first row matching spec.
func (s *Store[T]) Get(ctx context.Context, spec Where) (*T, bool, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1",
		quoteAll(s.mapper.Columns()), quote(s.mapper.Table()), where(spec))

	entity, err := s.mapper.Scan(s.db.QueryRowContext(ctx, stmt, spec.Args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select from %s: %w", s.mapper.Table(), err)
	}
	return entity, true, nil
}

// Update rewrites every non-key column of the row sharing entity's key.
// Returns false when no row has that key.
func (s *Store[T]) Update(ctx context.Context, entity *T) (bool, error) {
	if entity == nil {
		return false, entityerrors.NewArgumentError("entity")
	}

	columns := s.mapper.Columns()
	values := s.mapper.Values(entity)
	sets := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for i, column := range columns {
		if column == s.mapper.KeyColumn() {
			continue
		}
		sets = append(sets, quote(column)+" = ?")
		args = append(args, values[i])
	}
	args = append(args, s.mapper.Key(entity))

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		quote(s.mapper.Table()), strings.Join(sets, ", "), quote(s.mapper.KeyColumn()))
	return s.exec(ctx, "update", stmt, args)
}

// Delete removes the rows matching spec. Returns false when none matched.
func (s *Store[T]) Delete(ctx context.Context, spec Where) (bool, error) {
	stmt := fmt.Sprintf("DELETE FROM %s%s", quote(s.mapper.Table()), where(spec))
	return s.exec(ctx, "delete", stmt, spec.Args)
}

func (s *Store[T]) exec(ctx context.Context, op, stmt string, args []any) (bool, error) {
	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", op, s.mapper.Table(), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s %s: rows affected: %w", op, s.mapper.Table(), err)
	}
	return affected > 0, nil
}

// Count returns the number of rows matching spec.
func (s *Store[T]) Count(ctx context.Context, spec Where) (int64, error) {
	stmt := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", quote(s.mapper.Table()), where(spec))

	var n int64
	if err := s.db.QueryRowContext(ctx, stmt, spec.Args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.mapper.Table(), err)
	}
	return n, nil
}

// Page returns at most limit rows matching spec after skipping offset, ordered by sort.
func (s *Store[T]) Page(ctx context.Context, offset, limit int, spec Where, sort OrderBy) ([]*T, error) {
	items := make([]*T, 0, max(limit, 0))
	if limit <= 0 {
		return items, nil
	}

	column := sort.Column
	if column == "" {
		column = s.mapper.KeyColumn()
	}
	if !slices.Contains(s.mapper.Columns(), column) {
		return nil, entityerrors.NewValidationError("orderBy", fmt.Sprintf("unknown column %q", column))
	}
	direction := "DESC"
	if sort.Ascending {
		direction = "ASC"
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s LIMIT ? OFFSET ?",
		quoteAll(s.mapper.Columns()), quote(s.mapper.Table()), where(spec), quote(column), direction)
	args := append(slices.Clone(spec.Args), limit, max(offset, 0))

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", s.mapper.Table(), err)
	}
	defer rows.Close()

	for rows.Next() {
		entity, err := s.mapper.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.mapper.Table(), err)
		}
		items = append(items, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("page %s: %w", s.mapper.Table(), err)
	}
	return items, nil
}

func where(spec Where) string {
	if spec.Clause == "" {
		return ""
	}
	return " WHERE " + spec.Clause
}

func quote(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

func quoteAll(identifiers []string) string {
	quoted := make([]string, len(identifiers))
	for i, id := range identifiers {
		quoted[i] = quote(id)
	}
	return strings.Join(quoted, ", ")
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
