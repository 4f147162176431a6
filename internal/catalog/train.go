/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Train is the sample entity served by the entitymanager command.
type Train struct {
	ID        uuid.UUID       `json:"id" yaml:"id" validate:"required"`
	Reference string          `json:"reference" yaml:"reference" validate:"required,max=64"`
	Name      string          `json:"name,omitempty" yaml:"name,omitempty" validate:"max=128"`
	CreatedAt strfmt.DateTime `json:"createdAt" yaml:"createdAt"`
	UpdatedAt strfmt.DateTime `json:"updatedAt" yaml:"updatedAt"`
}

// NewTrain returns a Train with a fresh ID and both timestamps set to now.
func NewTrain(reference, name string) *Train {
	now := strfmt.DateTime(time.Now().UTC())
	return &Train{
		ID:        uuid.New(),
		Reference: reference,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key returns the string form of the train's ID.
func Key(t *Train) string {
	return t.ID.String()
}

// Touch sets UpdatedAt to now.
func (t *Train) Touch() {
	t.UpdatedAt = strfmt.DateTime(time.Now().UTC())
}

// Sort fields understood by the descriptor factories, matched case-insensitively.
const (
	SortByID        = "id"
	SortByName      = "name"
	SortByReference = "reference"
)

// sortField normalizes an OrderBy value. Unknown and empty values sort by
// reference.
func sortField(orderBy string) string {
	switch {
	case strings.EqualFold(orderBy, SortByID):
		return SortByID
	case strings.EqualFold(orderBy, SortByName):
		return SortByName
	default:
		return SortByReference
	}
}
