package models

import (
	"time"
)

// TaskType distinguishes ordinary tasks from milestones.
type TaskType string

const (
	TaskTypeTask      TaskType = "task"
	TaskTypeMilestone TaskType = "milestone"
)

// TaskStatus represents a schedule task's state. Transitions are
// unconstrained.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ScheduleTask is one timeline item, optionally tied to a project.
// The project reference is not enforced: deleting the project leaves
// the task with a dangling ProjectID.
type ScheduleTask struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   string     `json:"start_date"` // yyyy-MM-dd
	EndDate     string     `json:"end_date"`   // yyyy-MM-dd
	Progress    int        `json:"progress"`   // 0-100
	Type        TaskType   `json:"type"`
	Status      TaskStatus `json:"status"`
}

// NewScheduleTask creates a task covering the given date range.
func NewScheduleTask(title, startDate, endDate string) *ScheduleTask {
	return &ScheduleTask{
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		Type:      TaskTypeTask,
		Status:    TaskStatusTodo,
	}
}

// ActiveOn reports whether the task's [StartDate, EndDate] range
// contains the given day. The comparison is calendar-date inclusive
// and ignores time of day. Tasks with unparseable dates are never
// active.
func (t *ScheduleTask) ActiveOn(day time.Time) bool {
	start, err := time.Parse(DateFormat, t.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateFormat, t.EndDate)
	if err != nil {
		return false
	}
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}

// ParseTaskType converts a string to TaskType.
func ParseTaskType(s string) TaskType {
	if s == "milestone" {
		return TaskTypeMilestone
	}
	return TaskTypeTask
}

// ParseTaskStatus converts a string to TaskStatus.
func ParseTaskStatus(s string) TaskStatus {
	switch s {
	case "in-progress":
		return TaskStatusInProgress
	case "completed":
		return TaskStatusCompleted
	default:
		return TaskStatusTodo
	}
}
