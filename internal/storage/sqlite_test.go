package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gradtrack-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}

	store := NewSQLiteStorage(filepath.Join(tmpDir, "test.db"))
	if err := store.Open(); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("open database: %v", err)
	}

	if err := store.Migrate(); err != nil {
		store.Close()
		os.RemoveAll(tmpDir)
		t.Fatalf("migrate database: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tmpDir)
	})

	return store
}

func newTestProject(name string) *models.Project {
	p := models.NewProject(name, "Tsinghua University", "Finance", "test project")
	p.ID = uuid.New().String()
	return p
}

func TestSQLiteStorage_Migrate(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	tables := []string{
		"projects", "files", "notifications", "schedule_tasks",
		"interview_sessions", "preset_projects", "schema_migrations",
	}
	for _, table := range tables {
		var count int
		err := store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		if err != nil {
			t.Errorf("table %s should exist: %v", table, err)
		}
	}
}

func TestProjectRepository_CRUD(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	project := newTestProject("Master of Finance")
	project.Deadline = "2025-09-28"

	if err := store.Projects().Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	got, err := store.Projects().GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get project by id: %v", err)
	}
	if got == nil {
		t.Fatal("project should exist")
	}
	if got.Name != project.Name {
		t.Errorf("name = %v, want %v", got.Name, project.Name)
	}
	if got.School != project.School {
		t.Errorf("school = %v, want %v", got.School, project.School)
	}
	if got.Deadline != "2025-09-28" {
		t.Errorf("deadline = %v, want 2025-09-28", got.Deadline)
	}
	if got.Status != models.StatusPreparing {
		t.Errorf("status = %v, want %v", got.Status, models.StatusPreparing)
	}

	// Update
	got.Status = models.StatusSubmitted
	got.UpdatedAt = time.Now()
	if err := store.Projects().Update(ctx, got); err != nil {
		t.Fatalf("update project: %v", err)
	}
	updated, err := store.Projects().GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get updated project: %v", err)
	}
	if updated.Status != models.StatusSubmitted {
		t.Errorf("status after update = %v, want %v", updated.Status, models.StatusSubmitted)
	}

	// Delete
	if err := store.Projects().Delete(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	gone, err := store.Projects().GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get deleted project: %v", err)
	}
	if gone != nil {
		t.Error("project should be gone after delete")
	}
}

func TestProjectRepository_GetMissingIsAbsence(t *testing.T) {
	store := setupTestDB(t)

	got, err := store.Projects().GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("point lookup of missing id should not error, got %v", err)
	}
	if got != nil {
		t.Error("missing project should be nil")
	}
}

func TestProjectRepository_DuplicateID(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	project := newTestProject("first")
	if err := store.Projects().Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	dup := newTestProject("second")
	dup.ID = project.ID
	err := store.Projects().Create(ctx, dup)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestProjectRepository_UpdateDeleteMissing(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	phantom := newTestProject("phantom")
	if err := store.Projects().Update(ctx, phantom); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got %v", err)
	}
	if err := store.Projects().Delete(ctx, phantom.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: expected ErrNotFound, got %v", err)
	}
}

func TestProjectRepository_DeleteCascadesFiles(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	project := newTestProject("with files")
	if err := store.Projects().Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	other := newTestProject("untouched")
	if err := store.Projects().Create(ctx, other); err != nil {
		t.Fatalf("create other project: %v", err)
	}

	for i := 0; i < 3; i++ {
		file := models.NewProjectFile(project.ID, models.CategoryTranscript, "transcript.pdf", "application/pdf", []byte("data"))
		file.ID = uuid.New().String()
		if err := store.Files().Create(ctx, file); err != nil {
			t.Fatalf("create file: %v", err)
		}
	}
	keeper := models.NewProjectFile(other.ID, models.CategoryResume, "resume.pdf", "application/pdf", []byte("keep"))
	keeper.ID = uuid.New().String()
	if err := store.Files().Create(ctx, keeper); err != nil {
		t.Fatalf("create keeper file: %v", err)
	}

	if err := store.Projects().Delete(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	orphans, err := store.Files().ListByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("expected 0 files after cascade, got %d", len(orphans))
	}

	kept, err := store.Files().ListByProject(ctx, other.ID)
	if err != nil {
		t.Fatalf("list other files: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("other project's files should survive, got %d", len(kept))
	}
}

func TestFileRepository_ContentRoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	project := newTestProject("docs")
	if err := store.Projects().Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	content := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF}
	file := models.NewProjectFile(project.ID, models.CategoryStatement, "statement.pdf", "application/pdf", content)
	file.ID = uuid.New().String()
	if err := store.Files().Create(ctx, file); err != nil {
		t.Fatalf("create file: %v", err)
	}

	got, err := store.Files().GetByID(ctx, file.ID)
	if err != nil {
		t.Fatalf("get file: %v", err)
	}
	if got == nil {
		t.Fatal("file should exist")
	}
	if got.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", got.Size, len(content))
	}
	if string(got.Content) != string(content) {
		t.Errorf("content mismatch: got %v", got.Content)
	}
}

func TestFileRepository_ListByProjectCategory(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	project := newTestProject("categorized")
	if err := store.Projects().Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	categories := []models.FileCategory{
		models.CategoryTranscript, models.CategoryTranscript, models.CategoryResume,
	}
	for i, cat := range categories {
		file := models.NewProjectFile(project.ID, cat, "doc", "application/pdf", []byte{byte(i)})
		file.ID = uuid.New().String()
		if err := store.Files().Create(ctx, file); err != nil {
			t.Fatalf("create file %d: %v", i, err)
		}
	}

	transcripts, err := store.Files().ListByProjectCategory(ctx, project.ID, models.CategoryTranscript)
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(transcripts) != 2 {
		t.Errorf("expected 2 transcripts, got %d", len(transcripts))
	}
}

func TestNotificationRepository_UnreadCountAndOrdering(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		n := models.NewNotification("preset-1", "Tsinghua University - Master of Finance",
			"Admissions guide released", "https://www.pbcsf.tsinghua.edu.cn/", "2025-01-28")
		n.ID = uuid.New().String()
		n.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.Notifications().Create(ctx, n); err != nil {
			t.Fatalf("create notification: %v", err)
		}
		ids = append(ids, n.ID)
	}

	count, err := store.Notifications().CountUnread(ctx)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if count != 3 {
		t.Errorf("unread count = %d, want 3", count)
	}

	list, err := store.Notifications().List(ctx)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list length = %d, want 3", len(list))
	}
	// Newest first.
	if list[0].ID != ids[2] || list[2].ID != ids[0] {
		t.Error("notifications should be ordered created_at descending")
	}

	if err := store.Notifications().MarkRead(ctx, ids[0]); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	count, err = store.Notifications().CountUnread(ctx)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if count != 2 {
		t.Errorf("unread count after mark read = %d, want 2", count)
	}

	// Marking an already-read notification succeeds and the count is
	// unchanged.
	if err := store.Notifications().MarkRead(ctx, ids[0]); err != nil {
		t.Fatalf("mark read twice: %v", err)
	}
	count, _ = store.Notifications().CountUnread(ctx)
	if count != 2 {
		t.Errorf("unread count after repeat mark = %d, want 2", count)
	}

	if err := store.Notifications().MarkRead(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("mark read of missing id: expected ErrNotFound, got %v", err)
	}

	changed, err := store.Notifications().MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if changed != 2 {
		t.Errorf("mark all read changed %d rows, want 2", changed)
	}

	removed, err := store.Notifications().Clear(ctx)
	if err != nil {
		t.Fatalf("clear notifications: %v", err)
	}
	if removed != 3 {
		t.Errorf("clear removed %d, want 3", removed)
	}
}

func TestTaskRepository_CRUD(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	task := models.NewScheduleTask("prepare statement", "2025-06-01", "2025-06-15")
	task.ID = uuid.New().String()
	task.Description = "first draft"
	task.Progress = 40
	task.Status = models.TaskStatusInProgress

	if err := store.Tasks().Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := store.Tasks().GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got == nil {
		t.Fatal("task should exist")
	}
	if got.Progress != 40 || got.Status != models.TaskStatusInProgress {
		t.Errorf("got progress=%d status=%v", got.Progress, got.Status)
	}

	got.Status = models.TaskStatusCompleted
	got.Progress = 100
	if err := store.Tasks().Update(ctx, got); err != nil {
		t.Fatalf("update task: %v", err)
	}

	list, err := store.Tasks().List(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d, want 1", len(list))
	}
	if list[0].Status != models.TaskStatusCompleted {
		t.Errorf("status = %v, want completed", list[0].Status)
	}

	if err := store.Tasks().Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if err := store.Tasks().Delete(ctx, task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestInterviewRepository_TranscriptRoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	session := models.NewInterviewSession(models.InterviewProfessional, "", "Tsinghua CS")
	session.ID = uuid.New().String()
	session.Messages = []models.ChatMessage{
		{ID: "m1", Role: models.RoleAssistant, Content: "Tell me about a research project.", Timestamp: time.Now()},
		{ID: "m2", Role: models.RoleUser, Content: "I worked on a log analyzer.", Timestamp: time.Now()},
	}

	if err := store.Interviews().Create(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := store.Interviews().GetByID(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatal("session should exist")
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(got.Messages))
	}
	if got.Messages[1].Role != models.RoleUser {
		t.Errorf("second message role = %v, want user", got.Messages[1].Role)
	}
	if got.Ended() {
		t.Error("session should not be ended yet")
	}

	ended := time.Now()
	got.EndedAt = &ended
	if err := store.Interviews().Update(ctx, got); err != nil {
		t.Fatalf("update session: %v", err)
	}

	list, err := store.Interviews().List(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(list) != 1 || !list[0].Ended() {
		t.Error("listed session should be ended")
	}
}

func TestEnsurePresetProjects_Idempotent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if err := store.EnsurePresetProjects(); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := store.EnsurePresetProjects(); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	count, err := store.Presets().Count(ctx)
	if err != nil {
		t.Fatalf("count presets: %v", err)
	}
	if want := int64(len(PresetCatalog())); count != want {
		t.Errorf("preset count = %d, want %d", count, want)
	}

	preset, err := store.Presets().GetByID(ctx, "preset-1")
	if err != nil {
		t.Fatalf("get preset: %v", err)
	}
	if preset == nil || preset.School != "Tsinghua University" {
		t.Errorf("unexpected preset-1: %+v", preset)
	}
}

func TestSnapshotReadsAreStable(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		p := newTestProject("stable")
		if err := store.Projects().Create(ctx, p); err != nil {
			t.Fatalf("create project: %v", err)
		}
	}

	first, err := store.Projects().List(ctx)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := store.Projects().List(ctx)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("snapshot lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("snapshot order differs at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
