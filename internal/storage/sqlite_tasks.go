package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

type sqliteTaskRepo struct {
	db *sql.DB
}

func (r *sqliteTaskRepo) Create(ctx context.Context, task *models.ScheduleTask) error {
	query := `
		INSERT INTO schedule_tasks (id, project_id, title, description, start_date, end_date, progress, type, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.ProjectID, task.Title, task.Description,
		task.StartDate, task.EndDate, task.Progress, task.Type, task.Status,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert task %s: %w", task.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *sqliteTaskRepo) GetByID(ctx context.Context, id string) (*models.ScheduleTask, error) {
	query := `
		SELECT id, project_id, title, description, start_date, end_date, progress, type, status
		FROM schedule_tasks WHERE id = ?
	`
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return task, nil
}

func (r *sqliteTaskRepo) Update(ctx context.Context, task *models.ScheduleTask) error {
	query := `
		UPDATE schedule_tasks SET project_id = ?, title = ?, description = ?,
			start_date = ?, end_date = ?, progress = ?, type = ?, status = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		task.ProjectID, task.Title, task.Description,
		task.StartDate, task.EndDate, task.Progress, task.Type, task.Status,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("update task %s: %w", task.ID, ErrNotFound)
	}
	return nil
}

func (r *sqliteTaskRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM schedule_tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("delete task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sqliteTaskRepo) List(ctx context.Context) ([]*models.ScheduleTask, error) {
	query := `
		SELECT id, project_id, title, description, start_date, end_date, progress, type, status
		FROM schedule_tasks ORDER BY start_date, id
	`
	return r.queryTasks(ctx, query)
}

func (r *sqliteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*models.ScheduleTask, error) {
	query := `
		SELECT id, project_id, title, description, start_date, end_date, progress, type, status
		FROM schedule_tasks WHERE project_id = ? ORDER BY start_date, id
	`
	return r.queryTasks(ctx, query, projectID)
}

func (r *sqliteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.ScheduleTask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.ScheduleTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func scanTask(row rowScanner) (*models.ScheduleTask, error) {
	task := &models.ScheduleTask{}
	var projectID, description sql.NullString
	err := row.Scan(
		&task.ID, &projectID, &task.Title, &description,
		&task.StartDate, &task.EndDate, &task.Progress, &task.Type, &task.Status,
	)
	if err != nil {
		return nil, err
	}
	task.ProjectID = projectID.String
	task.Description = description.String
	return task, nil
}
