package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

type sqliteProjectRepo struct {
	db *sql.DB
}

func (r *sqliteProjectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, name, school, major, description, deadline, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Name, project.School, project.Major,
		project.Description, project.Deadline, project.Status,
		project.CreatedAt, project.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert project %s: %w", project.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *sqliteProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT id, name, school, major, description, deadline, status, created_at, updated_at
		FROM projects WHERE id = ?
	`
	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return project, nil
}

func (r *sqliteProjectRepo) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET name = ?, school = ?, major = ?, description = ?,
			deadline = ?, status = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		project.Name, project.School, project.Major, project.Description,
		project.Deadline, project.Status, project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("update project %s: %w", project.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the project and all of its files. Both steps run in
// one transaction: a concurrent reader never sees the project gone
// while its files remain, and a crash cannot orphan files.
func (r *sqliteProjectRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete project: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM files WHERE project_id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete project files: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete project: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		tx.Rollback()
		return fmt.Errorf("delete project %s: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete project: %w", err)
	}
	return nil
}

func (r *sqliteProjectRepo) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, name, school, major, description, deadline, status, created_at, updated_at
		FROM projects ORDER BY created_at, id
	`
	return r.queryProjects(ctx, query)
}

func (r *sqliteProjectRepo) ListByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	query := `
		SELECT id, name, school, major, description, deadline, status, created_at, updated_at
		FROM projects WHERE status = ? ORDER BY created_at, id
	`
	return r.queryProjects(ctx, query, status)
}

func (r *sqliteProjectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var description, deadline sql.NullString
	err := row.Scan(
		&project.ID, &project.Name, &project.School, &project.Major,
		&description, &deadline, &project.Status,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Description = description.String
	project.Deadline = deadline.String
	return project, nil
}
