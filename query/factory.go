/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import "github.com/suparena/entitymanager/paging"

// Factory translates manager intents into query descriptors understood by a
// repository. Q is the filter descriptor, S the sort descriptor; the manager
// never looks inside either. Implementations must be free of side effects.
type Factory[T, Q, S any] interface {
	// DefaultSpec returns the descriptor of the unfiltered listing scope.
	DefaultSpec() Q

	// ReadSpec returns the descriptor selecting the entity identified by entity.
	ReadSpec(entity *T) Q

	// DeleteSpec returns the descriptor selecting the entity to delete.
	DeleteSpec(entity *T) Q

	// PageSpec returns the descriptor of the filtered listing scope.
	PageSpec(filter paging.Filter) Q

	// SortSpec returns the ordering of a paged listing.
	SortSpec(filter paging.Filter) S
}
