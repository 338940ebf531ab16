package models

import (
	"time"
)

// InterviewType selects the mock interview question bank.
type InterviewType string

const (
	InterviewGeneral      InterviewType = "general"
	InterviewProfessional InterviewType = "professional"
	InterviewEnglish      InterviewType = "english"
)

// MessageRole identifies who wrote a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is a single message in a conversation. It is a value
// type embedded in its session, not a collection of its own.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// InterviewSession records one mock-interview run with its full
// transcript. ProjectName is a creation-time snapshot, like the one on
// Notification.
type InterviewSession struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id,omitempty"`
	ProjectName string        `json:"project_name,omitempty"`
	Type        InterviewType `json:"type"`
	Messages    []ChatMessage `json:"messages"`
	StartedAt   time.Time     `json:"started_at"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
}

// NewInterviewSession creates a session with the start timestamp set.
func NewInterviewSession(typ InterviewType, projectID, projectName string) *InterviewSession {
	return &InterviewSession{
		ProjectID:   projectID,
		ProjectName: projectName,
		Type:        typ,
		Messages:    []ChatMessage{},
		StartedAt:   time.Now(),
	}
}

// Ended reports whether the session has been closed.
func (s *InterviewSession) Ended() bool {
	return s.EndedAt != nil
}

// ParseInterviewType converts a string to InterviewType.
func ParseInterviewType(s string) InterviewType {
	switch s {
	case "professional":
		return InterviewProfessional
	case "english":
		return InterviewEnglish
	default:
		return InterviewGeneral
	}
}
