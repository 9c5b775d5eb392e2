// Package surreal provides a SurrealDB-backed project storage implementation.
package surreal

import (
	"context"
	"fmt"
	"strings"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/agorahq/agora/internal/services/project/filter"
	"github.com/agorahq/agora/internal/services/project/storage"
)

const tableName = "projects"

// schemaStatements define the uniqueness indexes backing create dedup under
// concurrency. The reference index is sparse: records without a reference
// omit the field entirely and are not indexed.
const schemaStatements = `
DEFINE TABLE IF NOT EXISTS projects SCHEMALESS;
DEFINE INDEX IF NOT EXISTS idx_projects_creator_name ON TABLE projects FIELDS created_by, name UNIQUE;
DEFINE INDEX IF NOT EXISTS idx_projects_creator_reference ON TABLE projects FIELDS created_by, reference UNIQUE;
`

// Config carries the SurrealDB connection settings.
type Config struct {
	DSN       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Store persists projects in SurrealDB. The server assigns record ids.
type Store struct {
	db *surrealdb.DB
}

// projectRecord is the SurrealDB representation of a project.
type projectRecord struct {
	ID          *models.RecordID       `json:"id,omitempty"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Reference   string                 `json:"reference,omitempty"`
	Highlight   bool                   `json:"highlight"`
	CreatedBy   string                 `json:"created_by"`
	CreatedAt   *models.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt   *models.CustomDateTime `json:"updated_at,omitempty"`
	DeletedAt   *models.CustomDateTime `json:"deleted_at,omitempty"`
}

// Open connects to the SurrealDB cluster and selects the configured
// namespace and database.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("surreal dsn is required")
	}
	if strings.TrimSpace(cfg.Namespace) == "" || strings.TrimSpace(cfg.Database) == "" {
		return nil, fmt.Errorf("surreal namespace and database are required")
	}

	db, err := surrealdb.FromEndpointURLString(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect to surreal at %s: %w", cfg.DSN, err)
	}
	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{Username: cfg.Username, Password: cfg.Password}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("sign in to surreal: %w", err)
		}
	}
	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("select surreal namespace %s database %s: %w", cfg.Namespace, cfg.Database, err)
	}
	if _, err := surrealdb.Query[any](ctx, db, schemaStatements, nil); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("define project schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close terminates the SurrealDB connection.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close(ctx)
}

// Find returns the project matching both id and creator.
func (s *Store) Find(ctx context.Context, projectID, createdBy string) (storage.Project, error) {
	projectID = strings.TrimSpace(projectID)
	createdBy = strings.TrimSpace(createdBy)
	if projectID == "" || createdBy == "" {
		return storage.Project{}, storage.ErrNotFound
	}

	records, err := s.query(ctx,
		"SELECT * FROM type::table($table) WHERE id = $id AND created_by = $created_by AND deleted_at IS NONE",
		map[string]any{
			"table":      tableName,
			"id":         models.NewRecordID(tableName, projectID),
			"created_by": createdBy,
		},
	)
	if err != nil {
		return storage.Project{}, err
	}
	if len(records) == 0 {
		return storage.Project{}, storage.ErrNotFound
	}
	return toProject(records[0]), nil
}

// FindByNameOrReference returns the creator's project matching name, or the
// reference when one is provided.
func (s *Store) FindByNameOrReference(ctx context.Context, createdBy, name, reference string) (storage.Project, error) {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return storage.Project{}, storage.ErrNotFound
	}

	records, err := s.query(ctx,
		"SELECT * FROM type::table($table) WHERE created_by = $created_by AND deleted_at IS NONE AND (name = $name OR ($reference != '' AND reference = $reference)) LIMIT 1",
		map[string]any{
			"table":      tableName,
			"created_by": createdBy,
			"name":       name,
			"reference":  reference,
		},
	)
	if err != nil {
		return storage.Project{}, err
	}
	if len(records) == 0 {
		return storage.Project{}, storage.ErrNotFound
	}
	return toProject(records[0]), nil
}

// FindAll returns the creator's projects, optionally narrowed by an AIP-160
// filter expression.
func (s *Store) FindAll(ctx context.Context, createdBy string, f storage.Filter) ([]storage.Project, error) {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return []storage.Project{}, nil
	}

	query := "SELECT * FROM type::table($table) WHERE created_by = $created_by AND deleted_at IS NONE"
	params := map[string]any{
		"table":      tableName,
		"created_by": createdBy,
	}

	cond, err := filter.ParseProjectFilter(f.Expression)
	if err != nil {
		return nil, fmt.Errorf("translate filter: %w", err)
	}
	if cond.Clause != "" {
		clause, condParams := bindCondition(cond)
		query += " AND " + clause
		for key, value := range condParams {
			params[key] = value
		}
	}
	query += " ORDER BY created_at"

	records, err := s.query(ctx, query, params)
	if err != nil {
		return nil, err
	}

	projects := make([]storage.Project, 0, len(records))
	for _, record := range records {
		projects = append(projects, toProject(record))
	}
	return projects, nil
}

// Create persists the project; SurrealDB assigns the record id.
func (s *Store) Create(ctx context.Context, project *storage.Project) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if project == nil {
		return fmt.Errorf("project is required")
	}

	created, err := surrealdb.Create[projectRecord](ctx, s.db, models.Table(tableName), fromProject(*project))
	if err != nil {
		if isIndexConflict(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create project on surreal: %w", err)
	}
	if created == nil || created.ID == nil {
		return fmt.Errorf("create project on surreal: no record id returned")
	}

	project.ID = fmt.Sprintf("%v", created.ID.ID)
	return nil
}

// Update overwrites the stored project by id: a full-content replace.
func (s *Store) Update(ctx context.Context, project storage.Project) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	projectID := strings.TrimSpace(project.ID)
	if projectID == "" {
		return storage.ErrNotFound
	}

	record := fromProject(project)
	recordID := models.NewRecordID(tableName, projectID)
	record.ID = &recordID

	if _, err := surrealdb.Update[projectRecord](ctx, s.db, recordID, record); err != nil {
		if isIndexConflict(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update project on surreal: %w", err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, sql string, params map[string]any) ([]projectRecord, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	results, err := surrealdb.Query[[]projectRecord](ctx, s.db, sql, params)
	if err != nil {
		return nil, fmt.Errorf("query surreal: %w", err)
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}
	return (*results)[0].Result, nil
}

// bindCondition rewrites a ?-parameterized condition into SurrealQL named
// parameters.
func bindCondition(cond filter.Condition) (string, map[string]any) {
	params := make(map[string]any, len(cond.Params))
	clause := cond.Clause
	for i, value := range cond.Params {
		key := fmt.Sprintf("f%d", i)
		clause = strings.Replace(clause, "?", "$"+key, 1)
		params[key] = value
	}
	return clause, params
}

func isIndexConflict(err error) bool {
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "already contains")
}

func fromProject(project storage.Project) projectRecord {
	record := projectRecord{
		Name:        project.Name,
		Description: project.Description,
		Reference:   project.Reference,
		Highlight:   project.Highlight,
		CreatedBy:   project.Meta.CreatedBy,
	}
	if !project.Meta.CreatedAt.IsZero() {
		record.CreatedAt = &models.CustomDateTime{Time: project.Meta.CreatedAt}
	}
	if !project.Meta.UpdatedAt.IsZero() {
		record.UpdatedAt = &models.CustomDateTime{Time: project.Meta.UpdatedAt}
	}
	if !project.Meta.DeletedAt.IsZero() {
		record.DeletedAt = &models.CustomDateTime{Time: project.Meta.DeletedAt}
	}
	return record
}

func toProject(record projectRecord) storage.Project {
	project := storage.Project{
		Name:        record.Name,
		Description: record.Description,
		Reference:   record.Reference,
		Highlight:   record.Highlight,
		Meta: storage.Metadata{
			CreatedBy: record.CreatedBy,
			CreatedAt: fromDateTime(record.CreatedAt),
			UpdatedAt: fromDateTime(record.UpdatedAt),
			DeletedAt: fromDateTime(record.DeletedAt),
		},
	}
	if record.ID != nil {
		project.ID = fmt.Sprintf("%v", record.ID.ID)
	}
	return project
}

func fromDateTime(value *models.CustomDateTime) time.Time {
	if value == nil {
		return time.Time{}
	}
	return value.Time
}
