// Package models defines the core data types for the application tracker.
package models

import (
	"time"
)

// DateFormat is the layout for user-facing calendar dates (deadlines,
// schedule ranges). These are calendar days, not instants, and are kept
// as strings end to end.
const DateFormat = "2006-01-02"

// ProjectStatus represents where an application stands.
type ProjectStatus string

const (
	StatusPreparing ProjectStatus = "preparing"
	StatusSubmitted ProjectStatus = "submitted"
	StatusInterview ProjectStatus = "interview"
	StatusOffer     ProjectStatus = "offer"
	StatusRejected  ProjectStatus = "rejected"
)

// ProjectStatuses lists all statuses in display order. Transitions are
// unconstrained: any status may move to any other.
var ProjectStatuses = []ProjectStatus{
	StatusPreparing,
	StatusSubmitted,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// Project represents one application target: a specific program at a
// specific school.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	School      string        `json:"school"`
	Major       string        `json:"major"`
	Description string        `json:"description,omitempty"`
	Deadline    string        `json:"deadline,omitempty"` // yyyy-MM-dd, optional
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewProject creates a new Project with initialized timestamps.
// CreatedAt is set once here and never changes; UpdatedAt is refreshed
// on every mutation.
func NewProject(name, school, major, description string) *Project {
	now := time.Now()
	return &Project{
		Name:        name,
		School:      school,
		Major:       major,
		Description: description,
		Status:      StatusPreparing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ParseProjectStatus converts a string to ProjectStatus.
func ParseProjectStatus(s string) ProjectStatus {
	switch s {
	case "submitted":
		return StatusSubmitted
	case "interview":
		return StatusInterview
	case "offer":
		return StatusOffer
	case "rejected":
		return StatusRejected
	default:
		return StatusPreparing
	}
}
