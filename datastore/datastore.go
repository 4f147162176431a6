/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// Repository is the persistence contract the entity manager drives.
//
// Q is the engine's filter descriptor and S its sort descriptor; both are
// produced by a query.Factory paired with the repository. Mutations report
// whether they took effect: false with a nil error is a soft failure (the
// entity already exists, nothing matched). Get reports absence through found.
type Repository[T, Q, S any] interface {
	// Create persists entity. Returns false when an entity with the same
	// identity already exists.
	Create(ctx context.Context, entity *T) (bool, error)

	// Get returns the entity matching spec.
	Get(ctx context.Context, spec Q) (entity *T, found bool, err error)

	// Update replaces the stored entity sharing entity's identity. Returns
	// false when no such entity exists.
	Update(ctx context.Context, entity *T) (bool, error)

	// Delete removes the entities matching spec. Returns false when nothing
	// was removed.
	Delete(ctx context.Context, spec Q) (bool, error)

	// Count returns the number of entities matching spec.
	Count(ctx context.Context, spec Q) (int64, error)

	// Page returns at most limit entities matching spec, skipping offset,
	// ordered by sort.
	Page(ctx context.Context, offset, limit int, spec Q, sort S) ([]*T, error)
}

// KeyFunc extracts the identity of an entity.
type KeyFunc[T any] func(entity *T) string
