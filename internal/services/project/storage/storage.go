// Package storage defines persistence contracts for project state.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no project matches both the id and the creator.
var ErrNotFound = errors.New("project not found")

// ErrAlreadyExists indicates a uniqueness-constrained project already exists.
var ErrAlreadyExists = errors.New("project already exists")

// Metadata stores the audit trail embedded in every project. CreatedBy and
// CreatedAt are set once at construction and never altered afterward.
type Metadata struct {
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// Touch refreshes the mutation timestamp.
func (m *Metadata) Touch(now time.Time) {
	m.UpdatedAt = now
}

// Project is the aggregate root. ID is empty until the store assigns it on
// creation. Reference correlates the project with the external entity that
// caused its creation, when any.
type Project struct {
	ID          string
	Name        string
	Description string
	Reference   string
	Highlight   bool
	Meta        Metadata
}

// Filter restricts FindAll results beyond the mandatory creator scoping.
// Zero value means no extra restriction.
type Filter struct {
	// Expression is an AIP-160 filter over name, reference and highlight.
	Expression string
}

// ProjectStore persists project aggregates. Implementations translate to and
// from the storage representation; business invariants stay in the
// application layer, except the uniqueness indexes that back dedup under
// concurrency.
type ProjectStore interface {
	// Find returns the project matching both id and creator, or ErrNotFound.
	Find(ctx context.Context, id, createdBy string) (Project, error)

	// FindByNameOrReference returns the creator's project matching the name,
	// or the reference when reference is non-empty. ErrNotFound when none
	// match.
	FindByNameOrReference(ctx context.Context, createdBy, name, reference string) (Project, error)

	// FindAll returns the creator's projects. An empty result is not an
	// error.
	FindAll(ctx context.Context, createdBy string, filter Filter) ([]Project, error)

	// Create persists the project and assigns a non-empty id.
	// ErrAlreadyExists on a uniqueness conflict.
	Create(ctx context.Context, project *Project) error

	// Update overwrites the stored project by id: a full-content replace,
	// not a partial patch.
	Update(ctx context.Context, project Project) error
}
