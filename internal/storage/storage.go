// Package storage provides the embedded database interfaces and SQLite
// implementation backing the application tracker.
package storage

import (
	"context"
	"errors"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

// ErrNotFound is returned by updates and deletes that target an id
// which does not exist. Point lookups signal absence with a nil
// record instead.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned when a write collides with an existing
// primary key. Ids are caller-supplied; uniqueness is the caller's
// obligation and this is the only collision the store rejects.
var ErrDuplicateID = errors.New("duplicate id")

// Storage is the main interface for database operations.
type Storage interface {
	// Open initializes the database connection.
	Open() error
	// Close closes the database connection.
	Close() error
	// Migrate runs database migrations.
	Migrate() error
	// EnsurePresetProjects seeds the preset catalog if it is empty.
	// Idempotent; safe to call on every start.
	EnsurePresetProjects() error

	// Repository accessors
	Projects() ProjectRepository
	Files() FileRepository
	Notifications() NotificationRepository
	Tasks() TaskRepository
	Interviews() InterviewRepository
	Presets() PresetRepository
}

// ProjectRepository defines operations for application targets.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	// Delete removes the project and all of its files in a single
	// transaction, so a crash can never leave orphaned files behind.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Project, error)
	ListByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error)
}

// FileRepository defines operations for uploaded documents.
// Files are immutable once stored; there is no update.
type FileRepository interface {
	Create(ctx context.Context, file *models.ProjectFile) error
	GetByID(ctx context.Context, id string) (*models.ProjectFile, error)
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*models.ProjectFile, error)
	ListByProjectCategory(ctx context.Context, projectID string, category models.FileCategory) ([]*models.ProjectFile, error)
}

// NotificationRepository defines operations for alerts.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// List returns notifications newest first (created_at descending).
	List(ctx context.Context) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead marks every unread notification read and returns how
	// many rows changed.
	MarkAllRead(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
	// Clear removes all notifications and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}

// TaskRepository defines operations for schedule tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *models.ScheduleTask) error
	GetByID(ctx context.Context, id string) (*models.ScheduleTask, error)
	Update(ctx context.Context, task *models.ScheduleTask) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.ScheduleTask, error)
	ListByProject(ctx context.Context, projectID string) ([]*models.ScheduleTask, error)
}

// InterviewRepository defines operations for mock-interview sessions.
type InterviewRepository interface {
	Create(ctx context.Context, session *models.InterviewSession) error
	GetByID(ctx context.Context, id string) (*models.InterviewSession, error)
	Update(ctx context.Context, session *models.InterviewSession) error
	// List returns sessions newest first (started_at descending).
	List(ctx context.Context) ([]*models.InterviewSession, error)
}

// PresetRepository defines read access to the seeded preset catalog.
type PresetRepository interface {
	Create(ctx context.Context, preset *models.PresetProject) error
	GetByID(ctx context.Context, id string) (*models.PresetProject, error)
	List(ctx context.Context) ([]*models.PresetProject, error)
	Count(ctx context.Context) (int64, error)
}
