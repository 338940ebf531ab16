package views

import (
	"time"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

// DayTaskLimit caps how many tasks a calendar day displays; the rest
// become an overflow count.
const DayTaskLimit = 3

// Day is one calendar day in a week view.
type Day struct {
	Date     time.Time
	Tasks    []*models.ScheduleTask
	Overflow int // tasks beyond DayTaskLimit
}

// WeekStart returns the Monday of the week containing ref, normalized
// to midnight UTC.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekOf returns the seven days of the Monday-start week containing
// ref.
func WeekOf(ref time.Time) [7]time.Time {
	var days [7]time.Time
	start := WeekStart(ref)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekView buckets tasks into the Monday-start week containing ref. A
// task lands in every day its inclusive [StartDate, EndDate] range
// covers; each day shows at most DayTaskLimit tasks with the rest
// counted as overflow.
func WeekView(ref time.Time, tasks []*models.ScheduleTask) []Day {
	days := WeekOf(ref)
	view := make([]Day, len(days))
	for i, date := range days {
		day := Day{Date: date}
		for _, task := range tasks {
			if task.ActiveOn(date) {
				day.Tasks = append(day.Tasks, task)
			}
		}
		if len(day.Tasks) > DayTaskLimit {
			day.Overflow = len(day.Tasks) - DayTaskLimit
			day.Tasks = day.Tasks[:DayTaskLimit]
		}
		view[i] = day
	}
	return view
}
