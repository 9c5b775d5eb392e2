package project

import (
	"context"
	"fmt"
	"testing"
	"time"

	projectv1 "github.com/agorahq/agora/api/gen/go/project/v1"
	"github.com/agorahq/agora/internal/services/project/application"
	"github.com/agorahq/agora/internal/services/project/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type memStore struct {
	projects map[string]storage.Project
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{projects: map[string]storage.Project{}}
}

func (s *memStore) Find(_ context.Context, id, createdBy string) (storage.Project, error) {
	project, ok := s.projects[id]
	if !ok || project.Meta.CreatedBy != createdBy {
		return storage.Project{}, storage.ErrNotFound
	}
	return project, nil
}

func (s *memStore) FindByNameOrReference(_ context.Context, createdBy, name, reference string) (storage.Project, error) {
	for _, project := range s.projects {
		if project.Meta.CreatedBy != createdBy {
			continue
		}
		if project.Name == name || (reference != "" && project.Reference == reference) {
			return project, nil
		}
	}
	return storage.Project{}, storage.ErrNotFound
}

func (s *memStore) FindAll(_ context.Context, createdBy string, _ storage.Filter) ([]storage.Project, error) {
	var projects []storage.Project
	for _, project := range s.projects {
		if project.Meta.CreatedBy == createdBy {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (s *memStore) Create(_ context.Context, project *storage.Project) error {
	s.nextID++
	project.ID = fmt.Sprintf("p%d", s.nextID)
	s.projects[project.ID] = *project
	return nil
}

func (s *memStore) Update(_ context.Context, project storage.Project) error {
	if _, ok := s.projects[project.ID]; !ok {
		return storage.ErrNotFound
	}
	s.projects[project.ID] = project
	return nil
}

func newTestService() *Service {
	clock := func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	app := application.New(newMemStore(), application.WithClock(clock))
	return NewService(app, "")
}

func userCtx(uid string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(DefaultUserHeader, uid))
}

func wantStatus(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("status = %s, want %s (%v)", st.Code(), code, err)
	}
}

func TestCreateProject(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateProject(userCtx("u1"), &projectv1.CreateProjectRequest{
		Name:        "Atlas",
		Description: "mapping",
		Highlight:   true,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	project := resp.GetProject()
	if project.GetId() == "" {
		t.Fatal("expected assigned id")
	}
	if project.GetName() != "Atlas" || !project.GetHighlight() {
		t.Fatalf("unexpected project %+v", project)
	}
	if project.GetCreatedAt() == nil {
		t.Fatal("expected created_at to be set")
	}
	if project.GetUpdatedAt() != nil {
		t.Fatal("expected updated_at to be unset on create")
	}
}

func TestCreateProjectDuplicate(t *testing.T) {
	svc := newTestService()
	req := &projectv1.CreateProjectRequest{Name: "Atlas"}

	if _, err := svc.CreateProject(userCtx("u1"), req); err != nil {
		t.Fatalf("create project: %v", err)
	}
	_, err := svc.CreateProject(userCtx("u1"), req)
	wantStatus(t, err, codes.AlreadyExists)

	// A different user may reuse the name.
	if _, err := svc.CreateProject(userCtx("u2"), req); err != nil {
		t.Fatalf("create for other user: %v", err)
	}
}

func TestCreateProjectMissingName(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateProject(userCtx("u1"), &projectv1.CreateProjectRequest{})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestCallerIdentity(t *testing.T) {
	svc := newTestService()
	req := &projectv1.CreateProjectRequest{Name: "Atlas"}

	// No metadata at all.
	_, err := svc.CreateProject(context.Background(), req)
	wantStatus(t, err, codes.PermissionDenied)

	// Metadata present, header absent.
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "v"))
	_, err = svc.CreateProject(ctx, req)
	wantStatus(t, err, codes.PermissionDenied)

	// Header present but blank.
	_, err = svc.CreateProject(userCtx(""), req)
	wantStatus(t, err, codes.InvalidArgument)

	// Header repeated.
	ctx = metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(DefaultUserHeader, "u1", DefaultUserHeader, "u2"))
	_, err = svc.CreateProject(ctx, req)
	wantStatus(t, err, codes.InvalidArgument)
}

func TestGetProject(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateProject(userCtx("u1"), &projectv1.CreateProjectRequest{Name: "Atlas"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	id := created.GetProject().GetId()

	resp, err := svc.GetProject(userCtx("u1"), &projectv1.GetProjectRequest{Id: id})
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if resp.GetProject().GetId() != id {
		t.Fatalf("got %s, want %s", resp.GetProject().GetId(), id)
	}

	// Another user's lookup must not reveal existence.
	_, err = svc.GetProject(userCtx("u2"), &projectv1.GetProjectRequest{Id: id})
	wantStatus(t, err, codes.NotFound)

	_, err = svc.GetProject(userCtx("u1"), &projectv1.GetProjectRequest{Id: "missing"})
	wantStatus(t, err, codes.NotFound)
}

func TestListProjects(t *testing.T) {
	svc := newTestService()

	for _, name := range []string{"Atlas", "Beacon"} {
		if _, err := svc.CreateProject(userCtx("u1"), &projectv1.CreateProjectRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	resp, err := svc.ListProjects(userCtx("u1"), &projectv1.ListProjectsRequest{})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(resp.GetProjects()) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(resp.GetProjects()))
	}

	empty, err := svc.ListProjects(userCtx("u2"), &projectv1.ListProjectsRequest{})
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty.GetProjects()) != 0 {
		t.Fatalf("expected no projects, got %d", len(empty.GetProjects()))
	}
}

func TestListProjectsInvalidFilter(t *testing.T) {
	svc := newTestService()

	_, err := svc.ListProjects(userCtx("u1"), &projectv1.ListProjectsRequest{Filter: `owner = "u1"`})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestUpdateProject(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateProject(userCtx("u1"), &projectv1.CreateProjectRequest{Name: "Atlas"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	id := created.GetProject().GetId()

	resp, err := svc.UpdateProject(userCtx("u1"), &projectv1.UpdateProjectRequest{
		Id:          id,
		Name:        "Atlas 2",
		Description: "renamed",
	})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	project := resp.GetProject()
	if project.GetName() != "Atlas 2" || project.GetDescription() != "renamed" {
		t.Fatalf("unexpected project %+v", project)
	}
	if project.GetUpdatedAt() == nil {
		t.Fatal("expected updated_at to be set")
	}

	_, err = svc.UpdateProject(userCtx("u2"), &projectv1.UpdateProjectRequest{Id: id, Name: "Nope"})
	wantStatus(t, err, codes.NotFound)

	_, err = svc.UpdateProject(userCtx("u1"), &projectv1.UpdateProjectRequest{Id: id})
	wantStatus(t, err, codes.InvalidArgument)
}
