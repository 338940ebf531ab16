package views

import (
	"github.com/good-yellow-bee/gradtrack/internal/models"
)

// GroupFilesByCategory partitions a project's files into the ten fixed
// categories. Every category appears in the result, empty or not, so
// callers can render the full checklist.
func GroupFilesByCategory(files []*models.ProjectFile) map[models.FileCategory][]*models.ProjectFile {
	groups := make(map[models.FileCategory][]*models.ProjectFile, 10)
	for _, info := range models.FileCategories() {
		groups[info.Key] = nil
	}
	for _, f := range files {
		groups[f.Category] = append(groups[f.Category], f)
	}
	return groups
}

// CompletionPercent reports how complete a project's document set is:
// the share of the ten categories holding at least one file, as a
// whole percentage. Three covered categories make 30%; no files make
// 0%.
func CompletionPercent(files []*models.ProjectFile) int {
	covered := make(map[models.FileCategory]bool)
	for _, f := range files {
		covered[f.Category] = true
	}
	// Count only real categories; stray values don't inflate progress.
	n := 0
	for _, info := range models.FileCategories() {
		if covered[info.Key] {
			n++
		}
	}
	return roundPercent(n, len(models.FileCategories()))
}
