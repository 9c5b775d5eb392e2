// Package sqlite provides a SQLite-backed project storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/agorahq/agora/internal/platform/id"
	sqlitemigrate "github.com/agorahq/agora/internal/platform/storage/sqlitemigrate"
	"github.com/agorahq/agora/internal/services/project/filter"
	"github.com/agorahq/agora/internal/services/project/storage"
	"github.com/agorahq/agora/internal/services/project/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const selectColumns = "id, name, description, reference, highlight, created_by, created_at, updated_at, deleted_at"

// Store persists projects in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite project store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Find returns the project matching both id and creator.
func (s *Store) Find(ctx context.Context, projectID, createdBy string) (storage.Project, error) {
	if err := ctx.Err(); err != nil {
		return storage.Project{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Project{}, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	createdBy = strings.TrimSpace(createdBy)
	if projectID == "" || createdBy == "" {
		return storage.Project{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM projects WHERE id = ? AND created_by = ? AND deleted_at IS NULL",
		projectID, createdBy,
	)
	return scanProject(row)
}

// FindByNameOrReference returns the creator's project matching name, or the
// reference when one is provided.
func (s *Store) FindByNameOrReference(ctx context.Context, createdBy, name, reference string) (storage.Project, error) {
	if err := ctx.Err(); err != nil {
		return storage.Project{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Project{}, fmt.Errorf("storage is not configured")
	}
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return storage.Project{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM projects WHERE created_by = ? AND deleted_at IS NULL AND (name = ? OR (? != '' AND reference = ?)) LIMIT 1",
		createdBy, name, reference, reference,
	)
	return scanProject(row)
}

// FindAll returns the creator's projects, optionally narrowed by an AIP-160
// filter expression. An empty result is not an error.
func (s *Store) FindAll(ctx context.Context, createdBy string, f storage.Filter) ([]storage.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return []storage.Project{}, nil
	}

	query := "SELECT " + selectColumns + " FROM projects WHERE created_by = ? AND deleted_at IS NULL"
	params := []any{createdBy}

	cond, err := filter.ParseProjectFilter(f.Expression)
	if err != nil {
		return nil, fmt.Errorf("translate filter: %w", err)
	}
	if cond.Clause != "" {
		query += " AND " + cond.Clause
		params = append(params, cond.Params...)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []storage.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// Create persists the project and assigns a non-empty id.
func (s *Store) Create(ctx context.Context, project *storage.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if project == nil {
		return fmt.Errorf("project is required")
	}
	name := strings.TrimSpace(project.Name)
	createdBy := strings.TrimSpace(project.Meta.CreatedBy)
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if createdBy == "" {
		return fmt.Errorf("project creator is required")
	}

	projectID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("assign project id: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		"INSERT INTO projects (id, name, description, reference, highlight, created_by, created_at, updated_at, deleted_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		projectID,
		name,
		project.Description,
		project.Reference,
		project.Highlight,
		createdBy,
		toMillis(project.Meta.CreatedAt),
		nullableMillis(project.Meta.UpdatedAt),
		nullableMillis(project.Meta.DeletedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert project: %w", err)
	}

	project.ID = projectID
	project.Name = name
	project.Meta.CreatedBy = createdBy
	return nil
}

// Update overwrites the stored project by id: a full-content replace.
func (s *Store) Update(ctx context.Context, project storage.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	projectID := strings.TrimSpace(project.ID)
	if projectID == "" {
		return storage.ErrNotFound
	}

	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE projects SET name = ?, description = ?, reference = ?, highlight = ?, updated_at = ?, deleted_at = ? WHERE id = ? AND created_by = ?",
		project.Name,
		project.Description,
		project.Reference,
		project.Highlight,
		nullableMillis(project.Meta.UpdatedAt),
		nullableMillis(project.Meta.DeletedAt),
		projectID,
		project.Meta.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (storage.Project, error) {
	var project storage.Project
	var createdAt int64
	var updatedAt, deletedAt sql.NullInt64

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Reference,
		&project.Highlight,
		&project.Meta.CreatedBy,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Project{}, storage.ErrNotFound
		}
		return storage.Project{}, fmt.Errorf("scan project: %w", err)
	}

	project.Meta.CreatedAt = fromMillis(createdAt)
	if updatedAt.Valid {
		project.Meta.UpdatedAt = fromMillis(updatedAt.Int64)
	}
	if deletedAt.Valid {
		project.Meta.DeletedAt = fromMillis(deletedAt.Int64)
	}
	return project, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func nullableMillis(value time.Time) sql.NullInt64 {
	if value.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(value), Valid: true}
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
