// Package application implements the project use cases on top of the
// storage and event contracts.
package application

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/agorahq/agora/internal/platform/errors"
	"github.com/agorahq/agora/internal/services/project/filter"
	"github.com/agorahq/agora/internal/services/project/storage"
)

// EventEmitter announces project lifecycle changes to interested consumers.
type EventEmitter interface {
	EmitCreated(ctx context.Context, project storage.Project) error
}

// Application coordinates project operations. The store enforces the
// uniqueness indexes; everything else lives here.
type Application struct {
	store  storage.ProjectStore
	events EventEmitter
	now    func() time.Time
}

// Option configures an Application.
type Option func(*Application)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Application) {
		a.now = now
	}
}

// WithEventEmitter wires an emitter notified after each successful create.
func WithEventEmitter(events EventEmitter) Option {
	return func(a *Application) {
		a.events = events
	}
}

// New builds an Application over the given store.
func New(store storage.ProjectStore, opts ...Option) *Application {
	app := &Application{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// CreateInput carries the fields accepted on project creation.
type CreateInput struct {
	Name        string
	Description string
	Reference   string
	Highlight   bool
	CreatedBy   string
}

// Create validates the input, rejects duplicates for the same creator, and
// persists a new project. When an emitter is wired the created event must be
// confirmed before Create reports success.
func (a *Application) Create(ctx context.Context, input CreateInput) (storage.Project, error) {
	name := strings.TrimSpace(input.Name)
	createdBy := strings.TrimSpace(input.CreatedBy)
	if name == "" || createdBy == "" {
		return storage.Project{}, errors.New(errors.CodeMissingFields, "project name and creator are required")
	}
	reference := strings.TrimSpace(input.Reference)

	existing, err := a.store.FindByNameOrReference(ctx, createdBy, name, reference)
	switch {
	case err == nil:
		return existing, errors.New(errors.CodeAlreadyExists, "project already exists")
	case !stderrors.Is(err, storage.ErrNotFound):
		return storage.Project{}, errors.Wrap(errors.CodeUnknown, "check for existing project", err)
	}

	project := storage.Project{
		Name:        name,
		Description: input.Description,
		Reference:   reference,
		Highlight:   input.Highlight,
		Meta: storage.Metadata{
			CreatedBy: createdBy,
			CreatedAt: a.now().UTC(),
		},
	}

	if err := a.store.Create(ctx, &project); err != nil {
		if stderrors.Is(err, storage.ErrAlreadyExists) {
			return storage.Project{}, errors.New(errors.CodeAlreadyExists, "project already exists")
		}
		return storage.Project{}, errors.Wrap(errors.CodeUnknown, "create project", err)
	}

	if a.events != nil {
		if err := a.events.EmitCreated(ctx, project); err != nil {
			return storage.Project{}, errors.Wrap(errors.CodeUnknown, "announce project creation", err)
		}
	}
	return project, nil
}

// Get returns the creator's project by id. Projects owned by other creators
// report not found, never permission errors.
func (a *Application) Get(ctx context.Context, projectID, createdBy string) (storage.Project, error) {
	if strings.TrimSpace(projectID) == "" || strings.TrimSpace(createdBy) == "" {
		return storage.Project{}, errors.New(errors.CodeMissingFields, "project id and creator are required")
	}

	project, err := a.store.Find(ctx, projectID, createdBy)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return storage.Project{}, errors.New(errors.CodeNotFound, "project not found")
		}
		return storage.Project{}, errors.Wrap(errors.CodeUnknown, "find project", err)
	}
	return project, nil
}

// List returns the creator's projects, narrowed by an optional AIP-160
// filter expression.
func (a *Application) List(ctx context.Context, createdBy, filterExpr string) ([]storage.Project, error) {
	if strings.TrimSpace(createdBy) == "" {
		return nil, errors.New(errors.CodeMissingFields, "project creator is required")
	}

	// Validate upfront so a malformed filter reports a format error instead
	// of a storage failure.
	if _, err := filter.ParseProjectFilter(filterExpr); err != nil {
		return nil, errors.Wrap(errors.CodeInvalidFormat, "invalid filter expression", err)
	}

	projects, err := a.store.FindAll(ctx, createdBy, storage.Filter{Expression: filterExpr})
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnknown, "list projects", err)
	}
	return projects, nil
}

// UpdateInput carries the replacement content for a project. Reference and
// highlight are not updatable: the reference is pinned to the entity that
// caused the creation.
type UpdateInput struct {
	ID          string
	Name        string
	Description string
	CreatedBy   string
}

// Update replaces the project's name and description. Creator and creation
// metadata are immutable.
func (a *Application) Update(ctx context.Context, input UpdateInput) (storage.Project, error) {
	name := strings.TrimSpace(input.Name)
	if strings.TrimSpace(input.ID) == "" || name == "" || strings.TrimSpace(input.CreatedBy) == "" {
		return storage.Project{}, errors.New(errors.CodeMissingFields, "project id, name and creator are required")
	}

	project, err := a.Get(ctx, input.ID, input.CreatedBy)
	if err != nil {
		return storage.Project{}, err
	}

	project.Name = name
	project.Description = input.Description
	project.Meta.Touch(a.now().UTC())

	if err := a.store.Update(ctx, project); err != nil {
		switch {
		case stderrors.Is(err, storage.ErrNotFound):
			return storage.Project{}, errors.New(errors.CodeNotFound, "project not found")
		case stderrors.Is(err, storage.ErrAlreadyExists):
			return storage.Project{}, errors.New(errors.CodeAlreadyExists, "project already exists")
		}
		return storage.Project{}, errors.Wrap(errors.CodeUnknown, "update project", err)
	}
	return project, nil
}
