package models

import (
	"time"
)

// Notification is one alert about a monitored program.
//
// ProjectName is a snapshot taken at creation time. It is deliberately
// not kept in sync with the project afterwards, so the notification
// keeps its historical wording even if the project is renamed or
// deleted.
type Notification struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishTime string    `json:"publish_time,omitempty"` // source-reported date, yyyy-MM-dd
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewNotification creates an unread Notification. IsRead only ever
// transitions false to true; there is no unread operation.
func NewNotification(projectID, projectName, title, link, publishTime string) *Notification {
	return &Notification{
		ProjectID:   projectID,
		ProjectName: projectName,
		Title:       title,
		Link:        link,
		PublishTime: publishTime,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}
}
