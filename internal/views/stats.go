// Package views computes derived, read-only views over already-fetched
// entity collections. Nothing here touches the store; callers fetch
// snapshots and pass them in.
package views

import (
	"math"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

// DashboardStats summarizes the dashboard header cards.
type DashboardStats struct {
	TotalProjects       int `json:"total_projects"`
	PreparingProjects   int `json:"preparing_projects"`
	SubmittedProjects   int `json:"submitted_projects"`
	UnreadNotifications int `json:"unread_notifications"`
}

// Dashboard computes the dashboard statistics in a single pass over
// each collection.
func Dashboard(projects []*models.Project, notifications []*models.Notification) DashboardStats {
	stats := DashboardStats{TotalProjects: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case models.StatusPreparing:
			stats.PreparingProjects++
		case models.StatusSubmitted:
			stats.SubmittedProjects++
		}
	}
	for _, n := range notifications {
		if !n.IsRead {
			stats.UnreadNotifications++
		}
	}
	return stats
}

// roundPercent turns part/total into a whole percentage, rounded to
// nearest. Zero total yields zero, never a division by zero.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// ScheduleProgress is the share of tasks that are completed, as a
// whole percentage.
func ScheduleProgress(tasks []*models.ScheduleTask) int {
	completed := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			completed++
		}
	}
	return roundPercent(completed, len(tasks))
}
