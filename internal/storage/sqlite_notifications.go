package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

type sqliteNotificationRepo struct {
	db *sql.DB
}

func (r *sqliteNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, project_id, project_name, title, link, publish_time, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.ProjectID, n.ProjectName, n.Title, n.Link,
		n.PublishTime, n.IsRead, n.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert notification %s: %w", n.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *sqliteNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	query := `
		SELECT id, project_id, project_name, title, link, publish_time, is_read, created_at
		FROM notifications WHERE id = ?
	`
	n := &models.Notification{}
	var publishTime sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.ProjectID, &n.ProjectName, &n.Title, &n.Link,
		&publishTime, &n.IsRead, &n.CreatedAt,
	)
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notification by id: %w", err)
	}
	n.PublishTime = publishTime.String
	return n, nil
}

func (r *sqliteNotificationRepo) List(ctx context.Context) ([]*models.Notification, error) {
	// created_at is the sort key, newest first; id breaks ties so
	// successive snapshots are identical.
	query := `
		SELECT id, project_id, project_name, title, link, publish_time, is_read, created_at
		FROM notifications ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		var publishTime sql.NullString
		err := rows.Scan(
			&n.ID, &n.ProjectID, &n.ProjectName, &n.Title, &n.Link,
			&publishTime, &n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.PublishTime = publishTime.String
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *sqliteNotificationRepo) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE notifications SET is_read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("mark notification %s read: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sqliteNotificationRepo) MarkAllRead(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE notifications SET is_read = 1 WHERE is_read = 0")
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

func (r *sqliteNotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications WHERE is_read = 0").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (r *sqliteNotificationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("delete notification %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sqliteNotificationRepo) Clear(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notifications")
	if err != nil {
		return 0, fmt.Errorf("clear notifications: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
