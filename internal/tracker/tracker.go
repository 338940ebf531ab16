// Package tracker implements the application-tracking operations on
// top of the storage layer: id generation, timestamp stamping, partial
// updates, the project-delete cascade, and the interview session
// lifecycle.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/good-yellow-bee/gradtrack/internal/models"
	"github.com/good-yellow-bee/gradtrack/internal/storage"
)

// Tracker is the operation surface the presentation layer calls. It
// owns id generation and clock access so both can be replaced in
// tests.
type Tracker struct {
	store storage.Storage
	now   func() time.Time
	newID func() string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator replaces the id generator.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// New creates a Tracker over the given store.
func New(store storage.Storage, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Store exposes the underlying storage for callers that need direct
// read access (the preset catalog, mainly).
func (t *Tracker) Store() storage.Storage {
	return t.store
}

// ProjectDraft carries the caller-supplied fields of a new project.
// Field validation (a project needs a name and a school) is the
// presentation layer's job; the tracker stores what it is given.
type ProjectDraft struct {
	Name        string
	School      string
	Major       string
	Description string
	Deadline    string
	Status      models.ProjectStatus // empty means preparing
}

// AddProject creates a project and returns its new id. CreatedAt and
// UpdatedAt start equal.
func (t *Tracker) AddProject(ctx context.Context, draft ProjectDraft) (string, error) {
	status := draft.Status
	if status == "" {
		status = models.StatusPreparing
	}
	now := t.now()
	project := &models.Project{
		ID:          t.newID(),
		Name:        draft.Name,
		School:      draft.School,
		Major:       draft.Major,
		Description: draft.Description,
		Deadline:    draft.Deadline,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.store.Projects().Create(ctx, project); err != nil {
		return "", err
	}
	return project.ID, nil
}

// AddProjectFromPreset creates a project pre-filled from a catalog
// entry.
func (t *Tracker) AddProjectFromPreset(ctx context.Context, presetID string) (string, error) {
	preset, err := t.store.Presets().GetByID(ctx, presetID)
	if err != nil {
		return "", err
	}
	if preset == nil {
		return "", fmt.Errorf("preset %s: %w", presetID, storage.ErrNotFound)
	}
	return t.AddProject(ctx, ProjectDraft{
		Name:        preset.Name,
		School:      preset.School,
		Major:       preset.Major,
		Description: preset.Description,
	})
}

// ProjectUpdate names the fields to change. Nil fields are left alone.
type ProjectUpdate struct {
	Name        *string
	School      *string
	Major       *string
	Description *string
	Deadline    *string
	Status      *models.ProjectStatus
}

// UpdateProject merges the given fields into the project and refreshes
// UpdatedAt. Returns storage.ErrNotFound if the id does not exist.
func (t *Tracker) UpdateProject(ctx context.Context, id string, update ProjectUpdate) error {
	project, err := t.store.Projects().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("project %s: %w", id, storage.ErrNotFound)
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.School != nil {
		project.School = *update.School
	}
	if update.Major != nil {
		project.Major = *update.Major
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Deadline != nil {
		project.Deadline = *update.Deadline
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	project.UpdatedAt = t.now()

	return t.store.Projects().Update(ctx, project)
}

// DeleteProject removes a project and all of its files.
func (t *Tracker) DeleteProject(ctx context.Context, id string) error {
	return t.store.Projects().Delete(ctx, id)
}

// Project returns a project or nil when absent.
func (t *Tracker) Project(ctx context.Context, id string) (*models.Project, error) {
	return t.store.Projects().GetByID(ctx, id)
}

// Projects returns a snapshot of all projects.
func (t *Tracker) Projects(ctx context.Context) ([]*models.Project, error) {
	return t.store.Projects().List(ctx)
}

// FileDraft carries the caller-supplied fields of a new upload.
type FileDraft struct {
	ProjectID string
	Category  models.FileCategory
	Name      string
	MIMEType  string
	Content   []byte
}

// AddFile stores an uploaded document and returns its new id. Size is
// derived from the content; files are immutable once stored.
func (t *Tracker) AddFile(ctx context.Context, draft FileDraft) (string, error) {
	file := &models.ProjectFile{
		ID:         t.newID(),
		ProjectID:  draft.ProjectID,
		Category:   draft.Category,
		Name:       draft.Name,
		MIMEType:   draft.MIMEType,
		Size:       int64(len(draft.Content)),
		Content:    draft.Content,
		UploadedAt: t.now(),
	}
	if err := t.store.Files().Create(ctx, file); err != nil {
		return "", err
	}
	return file.ID, nil
}

// DeleteFile removes a single document.
func (t *Tracker) DeleteFile(ctx context.Context, id string) error {
	return t.store.Files().Delete(ctx, id)
}

// File returns a document or nil when absent.
func (t *Tracker) File(ctx context.Context, id string) (*models.ProjectFile, error) {
	return t.store.Files().GetByID(ctx, id)
}

// FilesByProject returns a project's documents.
func (t *Tracker) FilesByProject(ctx context.Context, projectID string) ([]*models.ProjectFile, error) {
	return t.store.Files().ListByProject(ctx, projectID)
}

// FilesByCategory returns a project's documents of one category.
func (t *Tracker) FilesByCategory(ctx context.Context, projectID string, category models.FileCategory) ([]*models.ProjectFile, error) {
	return t.store.Files().ListByProjectCategory(ctx, projectID, category)
}

// NotificationDraft carries the caller-supplied fields of a new
// notification. ProjectName is the snapshot that will be kept verbatim.
type NotificationDraft struct {
	ProjectID   string
	ProjectName string
	Title       string
	Link        string
	PublishTime string
}

// AddNotification stores an unread notification and returns its id.
func (t *Tracker) AddNotification(ctx context.Context, draft NotificationDraft) (string, error) {
	n := &models.Notification{
		ID:          t.newID(),
		ProjectID:   draft.ProjectID,
		ProjectName: draft.ProjectName,
		Title:       draft.Title,
		Link:        draft.Link,
		PublishTime: draft.PublishTime,
		IsRead:      false,
		CreatedAt:   t.now(),
	}
	if err := t.store.Notifications().Create(ctx, n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// MarkNotificationRead marks one notification read.
func (t *Tracker) MarkNotificationRead(ctx context.Context, id string) error {
	return t.store.Notifications().MarkRead(ctx, id)
}

// MarkAllNotificationsRead marks every unread notification read and
// returns how many changed.
func (t *Tracker) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	return t.store.Notifications().MarkAllRead(ctx)
}

// Notifications returns all notifications, newest first.
func (t *Tracker) Notifications(ctx context.Context) ([]*models.Notification, error) {
	return t.store.Notifications().List(ctx)
}

// UnreadNotificationCount returns the number of unread notifications.
func (t *Tracker) UnreadNotificationCount(ctx context.Context) (int64, error) {
	return t.store.Notifications().CountUnread(ctx)
}

// DeleteNotification removes one notification.
func (t *Tracker) DeleteNotification(ctx context.Context, id string) error {
	return t.store.Notifications().Delete(ctx, id)
}

// ClearNotifications removes all notifications and returns how many
// were removed.
func (t *Tracker) ClearNotifications(ctx context.Context) (int64, error) {
	return t.store.Notifications().Clear(ctx)
}

// TaskDraft carries the caller-supplied fields of a new schedule task.
type TaskDraft struct {
	ProjectID   string
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Progress    int
	Type        models.TaskType   // empty means task
	Status      models.TaskStatus // empty means todo
}

// AddTask creates a schedule task and returns its id.
func (t *Tracker) AddTask(ctx context.Context, draft TaskDraft) (string, error) {
	typ := draft.Type
	if typ == "" {
		typ = models.TaskTypeTask
	}
	status := draft.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	task := &models.ScheduleTask{
		ID:          t.newID(),
		ProjectID:   draft.ProjectID,
		Title:       draft.Title,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Progress:    draft.Progress,
		Type:        typ,
		Status:      status,
	}
	if err := t.store.Tasks().Create(ctx, task); err != nil {
		return "", err
	}
	return task.ID, nil
}

// TaskUpdate names the fields to change. Nil fields are left alone.
// Progress and status are independently settable here; only
// ToggleTaskStatus keeps them coupled.
type TaskUpdate struct {
	ProjectID   *string
	Title       *string
	Description *string
	StartDate   *string
	EndDate     *string
	Progress    *int
	Type        *models.TaskType
	Status      *models.TaskStatus
}

// UpdateTask merges the given fields into the task. Returns
// storage.ErrNotFound if the id does not exist.
func (t *Tracker) UpdateTask(ctx context.Context, id string, update TaskUpdate) error {
	task, err := t.store.Tasks().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}

	if update.ProjectID != nil {
		task.ProjectID = *update.ProjectID
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.StartDate != nil {
		task.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		task.EndDate = *update.EndDate
	}
	if update.Progress != nil {
		task.Progress = *update.Progress
	}
	if update.Type != nil {
		task.Type = *update.Type
	}
	if update.Status != nil {
		task.Status = *update.Status
	}

	return t.store.Tasks().Update(ctx, task)
}

// ToggleTaskStatus flips a task between completed and todo. Completing
// a task snaps its progress to 100; reopening keeps the progress as
// is. Returns the updated task.
func (t *Tracker) ToggleTaskStatus(ctx context.Context, id string) (*models.ScheduleTask, error) {
	task, err := t.store.Tasks().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}

	if task.Status == models.TaskStatusCompleted {
		task.Status = models.TaskStatusTodo
	} else {
		task.Status = models.TaskStatusCompleted
		task.Progress = 100
	}

	if err := t.store.Tasks().Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a schedule task. Tasks referencing a deleted
// project are left alone; only files cascade.
func (t *Tracker) DeleteTask(ctx context.Context, id string) error {
	return t.store.Tasks().Delete(ctx, id)
}

// Task returns a schedule task or nil when absent.
func (t *Tracker) Task(ctx context.Context, id string) (*models.ScheduleTask, error) {
	return t.store.Tasks().GetByID(ctx, id)
}

// Tasks returns a snapshot of all schedule tasks.
func (t *Tracker) Tasks(ctx context.Context) ([]*models.ScheduleTask, error) {
	return t.store.Tasks().List(ctx)
}
