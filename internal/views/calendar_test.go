package views

import (
	"fmt"
	"testing"
	"time"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"monday maps to itself", "2026-03-02", "2026-03-02"},
		{"midweek", "2026-03-05", "2026-03-02"},
		{"sunday belongs to the prior monday", "2026-03-08", "2026-03-02"},
		{"crosses month boundary", "2026-03-01", "2026-02-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := time.Parse(models.DateFormat, tt.ref)
			if err != nil {
				t.Fatalf("parse ref: %v", err)
			}
			got := WeekStart(ref).Format(models.DateFormat)
			if got != tt.want {
				t.Errorf("WeekStart(%s) = %s, want %s", tt.ref, got, tt.want)
			}
		})
	}
}

func TestWeekOf(t *testing.T) {
	ref := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	days := WeekOf(ref)

	if got := days[0].Format(models.DateFormat); got != "2026-03-02" {
		t.Errorf("first day = %s, want 2026-03-02", got)
	}
	if got := days[6].Format(models.DateFormat); got != "2026-03-08" {
		t.Errorf("last day = %s, want 2026-03-08", got)
	}
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Errorf("day %d is not one day after day %d", i, i-1)
		}
	}
}

func TestWeekViewBucketsByDateRange(t *testing.T) {
	tasks := []*models.ScheduleTask{
		{ID: "t1", Title: "monday only", StartDate: "2026-03-02", EndDate: "2026-03-02"},
		{ID: "t2", Title: "all week", StartDate: "2026-03-02", EndDate: "2026-03-08"},
		{ID: "t3", Title: "outside", StartDate: "2026-03-09", EndDate: "2026-03-10"},
		{ID: "t4", Title: "bad dates", StartDate: "soon", EndDate: "later"},
	}

	view := WeekView(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), tasks)

	if len(view) != 7 {
		t.Fatalf("got %d days, want 7", len(view))
	}
	if got := len(view[0].Tasks); got != 2 {
		t.Errorf("monday has %d tasks, want 2", got)
	}
	if got := len(view[1].Tasks); got != 1 {
		t.Errorf("tuesday has %d tasks, want 1", got)
	}
	if view[1].Tasks[0].ID != "t2" {
		t.Errorf("tuesday task = %s, want t2", view[1].Tasks[0].ID)
	}
	for i, day := range view {
		for _, task := range day.Tasks {
			if task.ID == "t3" || task.ID == "t4" {
				t.Errorf("day %d contains task %s", i, task.ID)
			}
		}
	}
}

func TestWeekViewOverflow(t *testing.T) {
	var tasks []*models.ScheduleTask
	for i := 0; i < 5; i++ {
		tasks = append(tasks, &models.ScheduleTask{
			ID:        fmt.Sprintf("t%d", i),
			StartDate: "2026-03-02",
			EndDate:   "2026-03-02",
		})
	}

	view := WeekView(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), tasks)

	monday := view[0]
	if len(monday.Tasks) != DayTaskLimit {
		t.Errorf("monday shows %d tasks, want %d", len(monday.Tasks), DayTaskLimit)
	}
	if monday.Overflow != 2 {
		t.Errorf("monday overflow = %d, want 2", monday.Overflow)
	}
	if view[1].Overflow != 0 {
		t.Errorf("tuesday overflow = %d, want 0", view[1].Overflow)
	}
}
