// Package project exposes the project.v1 gRPC operations.
package project

import (
	"context"
	stderrors "errors"
	"strings"

	projectv1 "github.com/agorahq/agora/api/gen/go/project/v1"
	"github.com/agorahq/agora/internal/platform/errors"
	"github.com/agorahq/agora/internal/services/project/application"
	"github.com/agorahq/agora/internal/services/project/storage"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// DefaultUserHeader is the metadata key carrying the authenticated user id.
// The gateway in front of this service is trusted to set it.
const DefaultUserHeader = "x-uid"

// Service exposes project.v1 gRPC operations.
type Service struct {
	projectv1.UnimplementedProjectServiceServer
	app       *application.Application
	uidHeader string
}

// NewService creates a project service backed by the application layer.
// header is the metadata key carrying the caller identity; empty means
// DefaultUserHeader.
func NewService(app *application.Application, header string) *Service {
	if header == "" {
		header = DefaultUserHeader
	}
	return &Service{app: app, uidHeader: header}
}

// CreateProject creates a project owned by the calling user.
func (s *Service) CreateProject(ctx context.Context, in *projectv1.CreateProjectRequest) (*projectv1.CreateProjectResponse, error) {
	userID, err := s.callerID(ctx)
	if err != nil {
		return nil, statusError(err)
	}
	if in == nil {
		return nil, statusError(errors.New(errors.CodeMissingFields, "create project request is required"))
	}

	project, err := s.app.Create(ctx, application.CreateInput{
		Name:        in.GetName(),
		Description: in.GetDescription(),
		Highlight:   in.GetHighlight(),
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, statusError(err)
	}
	return &projectv1.CreateProjectResponse{Project: projectToProto(project)}, nil
}

// GetProject returns one project by id, scoped to the calling user.
func (s *Service) GetProject(ctx context.Context, in *projectv1.GetProjectRequest) (*projectv1.GetProjectResponse, error) {
	userID, err := s.callerID(ctx)
	if err != nil {
		return nil, statusError(err)
	}
	if in == nil {
		return nil, statusError(errors.New(errors.CodeMissingFields, "get project request is required"))
	}

	project, err := s.app.Get(ctx, in.GetId(), userID)
	if err != nil {
		return nil, statusError(err)
	}
	return &projectv1.GetProjectResponse{Project: projectToProto(project)}, nil
}

// ListProjects returns the calling user's projects.
func (s *Service) ListProjects(ctx context.Context, in *projectv1.ListProjectsRequest) (*projectv1.ListProjectsResponse, error) {
	userID, err := s.callerID(ctx)
	if err != nil {
		return nil, statusError(err)
	}

	projects, err := s.app.List(ctx, userID, in.GetFilter())
	if err != nil {
		return nil, statusError(err)
	}

	resp := &projectv1.ListProjectsResponse{
		Projects: make([]*projectv1.Project, 0, len(projects)),
	}
	for _, project := range projects {
		resp.Projects = append(resp.Projects, projectToProto(project))
	}
	return resp, nil
}

// UpdateProject replaces a project's content.
func (s *Service) UpdateProject(ctx context.Context, in *projectv1.UpdateProjectRequest) (*projectv1.UpdateProjectResponse, error) {
	userID, err := s.callerID(ctx)
	if err != nil {
		return nil, statusError(err)
	}
	if in == nil {
		return nil, statusError(errors.New(errors.CodeMissingFields, "update project request is required"))
	}

	project, err := s.app.Update(ctx, application.UpdateInput{
		ID:          in.GetId(),
		Name:        in.GetName(),
		Description: in.GetDescription(),
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, statusError(err)
	}
	return &projectv1.UpdateProjectResponse{Project: projectToProto(project)}, nil
}

// callerID extracts the authenticated user id from incoming metadata. An
// absent header is an authorization failure; a present but blank header is a
// malformed request.
func (s *Service) callerID(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New(errors.CodeUnauthorized, "caller identity header is missing")
	}
	values := md.Get(s.uidHeader)
	if len(values) == 0 {
		return "", errors.New(errors.CodeUnauthorized, "caller identity header is missing")
	}
	userID := strings.TrimSpace(values[0])
	if userID == "" || len(values) > 1 {
		return "", errors.New(errors.CodeInvalidHeader, "caller identity header is unusable")
	}
	return userID, nil
}

func statusError(err error) error {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		return appErr.ToGRPCStatus()
	}
	return errors.Wrap(errors.CodeUnknown, err.Error(), err).ToGRPCStatus()
}

func projectToProto(project storage.Project) *projectv1.Project {
	out := &projectv1.Project{
		Id:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Reference:   project.Reference,
		Highlight:   project.Highlight,
		CreatedAt:   timestamppb.New(project.Meta.CreatedAt),
	}
	if !project.Meta.UpdatedAt.IsZero() {
		out.UpdatedAt = timestamppb.New(project.Meta.UpdatedAt)
	}
	return out
}
