package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/agorahq/agora/internal/services/project/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "project.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newProject(name, createdBy, reference string) storage.Project {
	return storage.Project{
		Name:      name,
		Reference: reference,
		Meta: storage.Metadata{
			CreatedBy: createdBy,
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestCreateAssignsID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	project := newProject("Atlas", "u1", "")
	if err := store.Create(ctx, &project); err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.ID == "" {
		t.Fatal("expected assigned id")
	}

	found, err := store.Find(ctx, project.ID, "u1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Atlas" || found.Meta.CreatedBy != "u1" {
		t.Fatalf("unexpected project %+v", found)
	}
	if !found.Meta.CreatedAt.Equal(project.Meta.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", found.Meta.CreatedAt, project.Meta.CreatedAt)
	}
}

func TestCreateDuplicateNameSameCreator(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := newProject("Atlas", "u1", "")
	if err := store.Create(ctx, &first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := newProject("Atlas", "u1", "")
	err := store.Create(ctx, &second)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// Same name under a different creator is allowed.
	other := newProject("Atlas", "u2", "")
	if err := store.Create(ctx, &other); err != nil {
		t.Fatalf("create for other creator: %v", err)
	}
}

func TestCreateDuplicateReference(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := newProject("Atlas", "u1", "file-1")
	if err := store.Create(ctx, &first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := newProject("Atlas Copy", "u1", "file-1")
	err := store.Create(ctx, &second)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// Empty references never collide with each other.
	blankA := newProject("Blank A", "u1", "")
	blankB := newProject("Blank B", "u1", "")
	if err := store.Create(ctx, &blankA); err != nil {
		t.Fatalf("create blank a: %v", err)
	}
	if err := store.Create(ctx, &blankB); err != nil {
		t.Fatalf("create blank b: %v", err)
	}
}

func TestFindScopedByCreator(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	project := newProject("Atlas", "u1", "")
	if err := store.Create(ctx, &project); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := store.Find(ctx, project.ID, "u2")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign creator, got %v", err)
	}
	_, err = store.Find(ctx, "missing", "u1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestFindByNameOrReference(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	project := newProject("Atlas", "u1", "file-1")
	if err := store.Create(ctx, &project); err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := store.FindByNameOrReference(ctx, "u1", "Atlas", "")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if byName.ID != project.ID {
		t.Fatalf("find by name returned %s", byName.ID)
	}

	byRef, err := store.FindByNameOrReference(ctx, "u1", "Another Name", "file-1")
	if err != nil {
		t.Fatalf("find by reference: %v", err)
	}
	if byRef.ID != project.ID {
		t.Fatalf("find by reference returned %s", byRef.ID)
	}

	_, err = store.FindByNameOrReference(ctx, "u1", "Nope", "")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = store.FindByNameOrReference(ctx, "u2", "Atlas", "file-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign creator, got %v", err)
	}
}

func TestFindAllScopedAndFiltered(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	atlas := newProject("Atlas", "u1", "")
	atlas.Highlight = true
	beacon := newProject("Beacon", "u1", "")
	foreign := newProject("Atlas", "u2", "")
	for _, p := range []*storage.Project{&atlas, &beacon, &foreign} {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.Name, err)
		}
	}

	all, err := store.FindAll(ctx, "u1", storage.Filter{})
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 projects for u1, got %d", len(all))
	}

	highlighted, err := store.FindAll(ctx, "u1", storage.Filter{Expression: "highlight = true"})
	if err != nil {
		t.Fatalf("find all filtered: %v", err)
	}
	if len(highlighted) != 1 || highlighted[0].Name != "Atlas" {
		t.Fatalf("expected only Atlas highlighted, got %+v", highlighted)
	}

	empty, err := store.FindAll(ctx, "u3", storage.Filter{})
	if err != nil {
		t.Fatalf("find all empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no projects for u3, got %d", len(empty))
	}
}

func TestFindAllRejectsInvalidFilter(t *testing.T) {
	store := openTestStore(t)

	_, err := store.FindAll(context.Background(), "u1", storage.Filter{Expression: `owner = "u1"`})
	if err == nil {
		t.Fatal("expected error for invalid filter")
	}
}

func TestUpdateReplacesContent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	project := newProject("Atlas", "u1", "")
	if err := store.Create(ctx, &project); err != nil {
		t.Fatalf("create: %v", err)
	}

	project.Name = "Atlas 2"
	project.Description = "renamed"
	project.Meta.Touch(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	if err := store.Update(ctx, project); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := store.Find(ctx, project.ID, "u1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Atlas 2" || found.Description != "renamed" {
		t.Fatalf("unexpected project %+v", found)
	}
	if found.Meta.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be set")
	}
}

func TestUpdateMissingProject(t *testing.T) {
	store := openTestStore(t)

	project := newProject("Atlas", "u1", "")
	project.ID = "missing"
	err := store.Update(context.Background(), project)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
