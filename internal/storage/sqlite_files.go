package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

type sqliteFileRepo struct {
	db *sql.DB
}

func (r *sqliteFileRepo) Create(ctx context.Context, file *models.ProjectFile) error {
	query := `
		INSERT INTO files (id, project_id, category, name, mime_type, size, content, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.ProjectID, file.Category, file.Name,
		file.MIMEType, file.Size, file.Content, file.UploadedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert file %s: %w", file.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

func (r *sqliteFileRepo) GetByID(ctx context.Context, id string) (*models.ProjectFile, error) {
	query := `
		SELECT id, project_id, category, name, mime_type, size, content, uploaded_at
		FROM files WHERE id = ?
	`
	file := &models.ProjectFile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&file.ID, &file.ProjectID, &file.Category, &file.Name,
		&file.MIMEType, &file.Size, &file.Content, &file.UploadedAt,
	)
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get file by id: %w", err)
	}
	return file, nil
}

func (r *sqliteFileRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("delete file %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sqliteFileRepo) ListByProject(ctx context.Context, projectID string) ([]*models.ProjectFile, error) {
	query := `
		SELECT id, project_id, category, name, mime_type, size, content, uploaded_at
		FROM files WHERE project_id = ? ORDER BY uploaded_at, id
	`
	return r.queryFiles(ctx, query, projectID)
}

func (r *sqliteFileRepo) ListByProjectCategory(ctx context.Context, projectID string, category models.FileCategory) ([]*models.ProjectFile, error) {
	query := `
		SELECT id, project_id, category, name, mime_type, size, content, uploaded_at
		FROM files WHERE project_id = ? AND category = ? ORDER BY uploaded_at, id
	`
	return r.queryFiles(ctx, query, projectID, category)
}

func (r *sqliteFileRepo) queryFiles(ctx context.Context, query string, args ...any) ([]*models.ProjectFile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []*models.ProjectFile
	for rows.Next() {
		file := &models.ProjectFile{}
		err := rows.Scan(
			&file.ID, &file.ProjectID, &file.Category, &file.Name,
			&file.MIMEType, &file.Size, &file.Content, &file.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}
	return files, rows.Err()
}
