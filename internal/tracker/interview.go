package tracker

import (
	"context"
	"fmt"

	"github.com/good-yellow-bee/gradtrack/internal/models"
	"github.com/good-yellow-bee/gradtrack/internal/storage"
)

// StartInterview persists a new interview session opened with the
// given assistant message (typically the tip plus the first question)
// and returns it. ProjectName is snapshotted at this point.
func (t *Tracker) StartInterview(ctx context.Context, typ models.InterviewType, projectID, projectName, opening string) (*models.InterviewSession, error) {
	session := &models.InterviewSession{
		ID:          t.newID(),
		ProjectID:   projectID,
		ProjectName: projectName,
		Type:        typ,
		Messages: []models.ChatMessage{
			{
				ID:        t.newID(),
				Role:      models.RoleAssistant,
				Content:   opening,
				Timestamp: t.now(),
			},
		},
		StartedAt: t.now(),
	}
	if err := t.store.Interviews().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RecordInterviewExchange appends the user's answer and the
// interviewer's reply to the transcript and persists it, so the
// transcript survives a crash mid-interview.
func (t *Tracker) RecordInterviewExchange(ctx context.Context, sessionID, answer, reply string) error {
	session, err := t.store.Interviews().GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("interview session %s: %w", sessionID, storage.ErrNotFound)
	}

	session.Messages = append(session.Messages,
		models.ChatMessage{
			ID:        t.newID(),
			Role:      models.RoleUser,
			Content:   answer,
			Timestamp: t.now(),
		},
		models.ChatMessage{
			ID:        t.newID(),
			Role:      models.RoleAssistant,
			Content:   reply,
			Timestamp: t.now(),
		},
	)
	return t.store.Interviews().Update(ctx, session)
}

// EndInterview stamps the session's end time. Ending an already-ended
// session is a no-op.
func (t *Tracker) EndInterview(ctx context.Context, sessionID string) error {
	session, err := t.store.Interviews().GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("interview session %s: %w", sessionID, storage.ErrNotFound)
	}
	if session.Ended() {
		return nil
	}
	ended := t.now()
	session.EndedAt = &ended
	return t.store.Interviews().Update(ctx, session)
}

// InterviewSessions returns all sessions, newest first.
func (t *Tracker) InterviewSessions(ctx context.Context) ([]*models.InterviewSession, error) {
	return t.store.Interviews().List(ctx)
}
