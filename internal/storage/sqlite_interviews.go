package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

type sqliteInterviewRepo struct {
	db *sql.DB
}

func (r *sqliteInterviewRepo) Create(ctx context.Context, session *models.InterviewSession) error {
	messages, err := json.Marshal(session.Messages)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}

	query := `
		INSERT INTO interview_sessions (id, project_id, project_name, type, messages, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		session.ID, session.ProjectID, session.ProjectName, session.Type,
		string(messages), session.StartedAt, session.EndedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert interview session %s: %w", session.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert interview session: %w", err)
	}
	return nil
}

func (r *sqliteInterviewRepo) GetByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	query := `
		SELECT id, project_id, project_name, type, messages, started_at, ended_at
		FROM interview_sessions WHERE id = ?
	`
	session, err := scanInterviewSession(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get interview session by id: %w", err)
	}
	return session, nil
}

func (r *sqliteInterviewRepo) Update(ctx context.Context, session *models.InterviewSession) error {
	messages, err := json.Marshal(session.Messages)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}

	query := `
		UPDATE interview_sessions SET project_id = ?, project_name = ?, type = ?,
			messages = ?, ended_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		session.ProjectID, session.ProjectName, session.Type,
		string(messages), session.EndedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update interview session: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("update interview session %s: %w", session.ID, ErrNotFound)
	}
	return nil
}

func (r *sqliteInterviewRepo) List(ctx context.Context) ([]*models.InterviewSession, error) {
	query := `
		SELECT id, project_id, project_name, type, messages, started_at, ended_at
		FROM interview_sessions ORDER BY started_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list interview sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.InterviewSession
	for rows.Next() {
		session, err := scanInterviewSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func scanInterviewSession(row rowScanner) (*models.InterviewSession, error) {
	session := &models.InterviewSession{}
	var projectID, projectName sql.NullString
	var messages string
	var endedAt sql.NullTime
	err := row.Scan(
		&session.ID, &projectID, &projectName, &session.Type,
		&messages, &session.StartedAt, &endedAt,
	)
	if err != nil {
		return nil, err
	}
	session.ProjectID = projectID.String
	session.ProjectName = projectName.String
	if endedAt.Valid {
		t := endedAt.Time
		session.EndedAt = &t
	}
	if err := json.Unmarshal([]byte(messages), &session.Messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return session, nil
}
