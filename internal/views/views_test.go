package views

import (
	"testing"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

func TestDashboard(t *testing.T) {
	projects := []*models.Project{
		{ID: "p1", Status: models.StatusPreparing},
		{ID: "p2", Status: models.StatusPreparing},
		{ID: "p3", Status: models.StatusSubmitted},
		{ID: "p4", Status: models.StatusOffer},
	}
	notifications := []*models.Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: true},
		{ID: "n3", IsRead: false},
	}

	stats := Dashboard(projects, notifications)

	if stats.TotalProjects != 4 {
		t.Errorf("TotalProjects = %d, want 4", stats.TotalProjects)
	}
	if stats.PreparingProjects != 2 {
		t.Errorf("PreparingProjects = %d, want 2", stats.PreparingProjects)
	}
	if stats.SubmittedProjects != 1 {
		t.Errorf("SubmittedProjects = %d, want 1", stats.SubmittedProjects)
	}
	if stats.UnreadNotifications != 2 {
		t.Errorf("UnreadNotifications = %d, want 2", stats.UnreadNotifications)
	}
}

func TestDashboardEmpty(t *testing.T) {
	stats := Dashboard(nil, nil)
	if stats != (DashboardStats{}) {
		t.Errorf("Dashboard(nil, nil) = %+v, want zero value", stats)
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name  string
		files []*models.ProjectFile
		want  int
	}{
		{"no files", nil, 0},
		{
			"three categories",
			[]*models.ProjectFile{
				{ID: "f1", Category: models.CategoryTranscript},
				{ID: "f2", Category: models.CategoryResume},
				{ID: "f3", Category: models.CategoryStatement},
			},
			30,
		},
		{
			"duplicates count once",
			[]*models.ProjectFile{
				{ID: "f1", Category: models.CategoryTranscript},
				{ID: "f2", Category: models.CategoryTranscript},
			},
			10,
		},
		{
			"unknown category ignored",
			[]*models.ProjectFile{
				{ID: "f1", Category: models.FileCategory("bogus")},
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercent(tt.files); got != tt.want {
				t.Errorf("CompletionPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGroupFilesByCategory(t *testing.T) {
	files := []*models.ProjectFile{
		{ID: "f1", Category: models.CategoryTranscript},
		{ID: "f2", Category: models.CategoryTranscript},
		{ID: "f3", Category: models.CategoryOther},
	}

	groups := GroupFilesByCategory(files)

	if len(groups) != len(models.FileCategories()) {
		t.Fatalf("got %d groups, want %d", len(groups), len(models.FileCategories()))
	}
	if len(groups[models.CategoryTranscript]) != 2 {
		t.Errorf("transcript group has %d files, want 2", len(groups[models.CategoryTranscript]))
	}
	if len(groups[models.CategoryResume]) != 0 {
		t.Errorf("resume group has %d files, want 0", len(groups[models.CategoryResume]))
	}
	if _, ok := groups[models.CategoryRanking]; !ok {
		t.Error("empty category missing from result")
	}
}

func TestScheduleProgress(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*models.ScheduleTask
		want  int
	}{
		{"no tasks", nil, 0},
		{
			"half done",
			[]*models.ScheduleTask{
				{Status: models.TaskStatusCompleted},
				{Status: models.TaskStatusCompleted},
				{Status: models.TaskStatusTodo},
				{Status: models.TaskStatusInProgress},
			},
			50,
		},
		{
			"rounds to nearest",
			[]*models.ScheduleTask{
				{Status: models.TaskStatusCompleted},
				{Status: models.TaskStatusTodo},
				{Status: models.TaskStatusTodo},
			},
			33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScheduleProgress(tt.tasks); got != tt.want {
				t.Errorf("ScheduleProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}
