package models

import (
	"time"
)

// FileCategory is one of the ten fixed document kinds an application
// needs.
type FileCategory string

const (
	CategoryTranscript     FileCategory = "transcript"
	CategoryRanking        FileCategory = "ranking"
	CategoryEnglish        FileCategory = "english"
	CategoryRecommendation FileCategory = "recommendation"
	CategoryStatement      FileCategory = "statement"
	CategoryResume         FileCategory = "resume"
	CategoryPaper          FileCategory = "paper"
	CategoryInternship     FileCategory = "internship"
	CategoryStudy          FileCategory = "study"
	CategoryOther          FileCategory = "other"
)

// CategoryInfo describes a document category for display and upload
// filtering.
type CategoryInfo struct {
	Key    FileCategory
	Label  string
	Accept string // comma-separated extensions, "*" for any
}

// fileCategories is the fixed category table, in display order.
var fileCategories = []CategoryInfo{
	{Key: CategoryTranscript, Label: "Transcript", Accept: ".pdf"},
	{Key: CategoryRanking, Label: "Class Ranking Certificate", Accept: ".pdf"},
	{Key: CategoryEnglish, Label: "English Proficiency", Accept: ".pdf"},
	{Key: CategoryRecommendation, Label: "Recommendation Letters", Accept: ".pdf,.doc,.docx"},
	{Key: CategoryStatement, Label: "Personal Statement", Accept: ".pdf,.doc,.docx"},
	{Key: CategoryResume, Label: "Resume", Accept: ".pdf,.doc,.docx"},
	{Key: CategoryPaper, Label: "Publications", Accept: ".pdf"},
	{Key: CategoryInternship, Label: "Internship & Practice", Accept: ".pdf,.zip,.pptx"},
	{Key: CategoryStudy, Label: "Study Materials", Accept: ".pdf,.doc,.docx,.zip"},
	{Key: CategoryOther, Label: "Other Materials", Accept: "*"},
}

// FileCategories returns the fixed category table, in display order.
func FileCategories() []CategoryInfo {
	out := make([]CategoryInfo, len(fileCategories))
	copy(out, fileCategories)
	return out
}

// CategoryLabel returns the display label for a category, or the raw
// key if the category is unknown.
func CategoryLabel(c FileCategory) string {
	for _, info := range fileCategories {
		if info.Key == c {
			return info.Label
		}
	}
	return string(c)
}

// ParseFileCategory converts a string to FileCategory. Unknown values
// fall back to CategoryOther.
func ParseFileCategory(s string) FileCategory {
	for _, info := range fileCategories {
		if string(info.Key) == s {
			return info.Key
		}
	}
	return CategoryOther
}

// ProjectFile is one uploaded document belonging to exactly one
// project. Files are immutable once stored: there is no update, only
// delete (individually or via project cascade).
type ProjectFile struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"project_id"`
	Category   FileCategory `json:"category"`
	Name       string       `json:"name"`
	MIMEType   string       `json:"mime_type"`
	Size       int64        `json:"size"`
	Content    []byte       `json:"-"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// NewProjectFile creates a ProjectFile with the upload timestamp set.
// Size is derived from the content.
func NewProjectFile(projectID string, category FileCategory, name, mimeType string, content []byte) *ProjectFile {
	return &ProjectFile{
		ProjectID:  projectID,
		Category:   category,
		Name:       name,
		MIMEType:   mimeType,
		Size:       int64(len(content)),
		Content:    content,
		UploadedAt: time.Now(),
	}
}
