package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

type sqlitePresetRepo struct {
	db *sql.DB
}

func (r *sqlitePresetRepo) Create(ctx context.Context, preset *models.PresetProject) error {
	query := `
		INSERT INTO preset_projects (id, name, school, major, description, official_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		preset.ID, preset.Name, preset.School, preset.Major,
		preset.Description, preset.OfficialURL,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert preset %s: %w", preset.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert preset: %w", err)
	}
	return nil
}

func (r *sqlitePresetRepo) GetByID(ctx context.Context, id string) (*models.PresetProject, error) {
	query := `
		SELECT id, name, school, major, description, official_url
		FROM preset_projects WHERE id = ?
	`
	preset := &models.PresetProject{}
	var description, officialURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&preset.ID, &preset.Name, &preset.School, &preset.Major,
		&description, &officialURL,
	)
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preset by id: %w", err)
	}
	preset.Description = description.String
	preset.OfficialURL = officialURL.String
	return preset, nil
}

func (r *sqlitePresetRepo) List(ctx context.Context) ([]*models.PresetProject, error) {
	query := `
		SELECT id, name, school, major, description, official_url
		FROM preset_projects ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []*models.PresetProject
	for rows.Next() {
		preset := &models.PresetProject{}
		var description, officialURL sql.NullString
		err := rows.Scan(
			&preset.ID, &preset.Name, &preset.School, &preset.Major,
			&description, &officialURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		preset.Description = description.String
		preset.OfficialURL = officialURL.String
		presets = append(presets, preset)
	}
	return presets, rows.Err()
}

func (r *sqlitePresetRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM preset_projects").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count presets: %w", err)
	}
	return count, nil
}
