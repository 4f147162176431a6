/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/suparena/entitymanager/datastore"
	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/query"
)

// Store implements datastore.Repository on BadgerDB. Entities are stored as
// JSON under "<prefix>:<key>" and filtered in process by query.Spec.
type Store[T any] struct {
	db      *badger.DB
	prefix  []byte
	keyFunc datastore.KeyFunc[T]
}

var _ datastore.Repository[struct{}, query.Spec[struct{}], query.Sort[struct{}]] = (*Store[struct{}])(nil)

// New creates a Store keeping entities of type T under prefix.
func New[T any](db *badger.DB, prefix string, keyFunc datastore.KeyFunc[T]) (*Store[T], error) {
	if db == nil {
		return nil, entityerrors.NewArgumentError("db")
	}
	if keyFunc == nil {
		return nil, entityerrors.NewArgumentError("keyFunc")
	}
	if prefix == "" {
		return nil, entityerrors.NewValidationError("prefix", "must not be empty")
	}
	return &Store[T]{db: db, prefix: []byte(prefix + ":"), keyFunc: keyFunc}, nil
}

func (s *Store[T]) key(entity *T) ([]byte, error) {
	if entity == nil {
		return nil, entityerrors.NewArgumentError("entity")
	}
	k := s.keyFunc(entity)
	if k == "" {
		return nil, entityerrors.NewValidationError("key", "unable to extract key from entity")
	}
	return append(append([]byte{}, s.prefix...), k...), nil
}

// Create stores entity unless its key is taken.
func (s *Store[T]) Create(ctx context.Context, entity *T) (bool, error) {
	return s.put(ctx, "create", entity, false)
}

// Update replaces the stored entity sharing entity's key.
func (s *Store[T]) Update(ctx context.Context, entity *T) (bool, error) {
	return s.put(ctx, "update", entity, true)
}

func (s *Store[T]) put(ctx context.Context, op string, entity *T, mustExist bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, entityerrors.NewCancelledError(op, err)
	}
	key, err := s.key(entity)
	if err != nil {
		return false, err
	}
	value, err := json.Marshal(entity)
	if err != nil {
		return false, fmt.Errorf("marshal entity: %w", err)
	}

	written := false
	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		exists := err == nil
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if exists != mustExist {
			return nil
		}
		written = true
		return txn.Set(key, value)
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return written, nil
}

// Get returns the first entity, in key order, satisfying spec.
func (s *Store[T]) Get(ctx context.Context, spec query.Spec[T]) (*T, bool, error) {
	var found *T
	err := s.scan(ctx, "get", spec, func(_ []byte, entity *T) bool {
		found = entity
		return false
	})
	if err != nil {
		return nil, false, err
	}
	return found, found != nil, nil
}

// Delete removes every entity satisfying spec.
func (s *Store[T]) Delete(ctx context.Context, spec query.Spec[T]) (bool, error) {
	var keys [][]byte
	err := s.scan(ctx, "delete", spec, func(key []byte, _ *T) bool {
		keys = append(keys, key)
		return true
	})
	if err != nil || len(keys) == 0 {
		return false, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete: %w", err)
	}
	return true, nil
}

// Count returns the number of entities satisfying spec.
func (s *Store[T]) Count(ctx context.Context, spec query.Spec[T]) (int64, error) {
	var n int64
	err := s.scan(ctx, "count", spec, func([]byte, *T) bool {
		n++
		return true
	})
	return n, err
}

// Page returns the window [offset, offset+limit) of the entities satisfying
// spec, ordered by sort, or by key when sort has no comparator.
func (s *Store[T]) Page(ctx context.Context, offset, limit int, spec query.Spec[T], sort query.Sort[T]) ([]*T, error) {
	var matches []*T
	err := s.scan(ctx, "page", spec, func(_ []byte, entity *T) bool {
		matches = append(matches, entity)
		return true
	})
	if err != nil {
		return nil, err
	}
	sort.Apply(matches)
	return query.Window(matches, offset, limit), nil
}

// scan visits, in key order, the entities under the prefix satisfying spec
// until fn returns false.
func (s *Store[T]) scan(ctx context.Context, op string, spec query.Spec[T], fn func(key []byte, entity *T) bool) error {
	if err := ctx.Err(); err != nil {
		return entityerrors.NewCancelledError(op, err)
	}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = s.prefix
		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return entityerrors.NewCancelledError(op, err)
			}

			item := iter.Item()
			entity := new(T)
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, entity)
			}); err != nil {
				return fmt.Errorf("unmarshal %s: %w", item.Key(), err)
			}
			if spec != nil && !spec.IsSatisfiedBy(entity) {
				continue
			}
			if !fn(item.KeyCopy(nil), entity) {
				return nil
			}
		}
		return nil
	})
	if err != nil && !entityerrors.IsCancelled(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return err
}
