package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/gradtrack/internal/models"
	"github.com/good-yellow-bee/gradtrack/internal/storage"
	"github.com/good-yellow-bee/gradtrack/internal/tracker"
	"github.com/good-yellow-bee/gradtrack/internal/views"
)

var (
	taskProjectID string
	taskTitle     string
	taskDesc      string
	taskStart     string
	taskEnd       string
	taskProgress  int
	taskType      string
	taskStatus    string
	taskWeekDate  string
)

// taskCmd represents the task command group
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Schedule task commands",
	Long: `Commands for managing schedule tasks and milestones.

Tasks cover a date range and carry a progress percentage. Toggling a
task to completed snaps its progress to 100.

Examples:
  # Add a task for this month
  gradtrack task add --title "Draft personal statement" --start 2026-09-01 --end 2026-09-15

  # Mark it done
  gradtrack task toggle <id>

  # See this week's calendar
  gradtrack task week`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a schedule task",
	Long: `Add a schedule task or milestone.

Example:
  gradtrack task add --title "Submit application" --start 2026-09-30 --end 2026-09-30 --type milestone`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if taskTitle == "" {
			return fmt.Errorf("--title is required")
		}
		if taskStart == "" || taskEnd == "" {
			return fmt.Errorf("--start and --end are required (yyyy-MM-dd)")
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := tr.AddTask(context.Background(), tracker.TaskDraft{
			ProjectID:   taskProjectID,
			Title:       taskTitle,
			Description: taskDesc,
			StartDate:   taskStart,
			EndDate:     taskEnd,
			Progress:    taskProgress,
			Type:        models.ParseTaskType(taskType),
			Status:      models.ParseTaskStatus(taskStatus),
		})
		if err != nil {
			return fmt.Errorf("add task: %w", err)
		}

		fmt.Printf("Task created: %s\n", id)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedule tasks",
	Long: `List all schedule tasks ordered by start date, with the overall
completion percentage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		tasks, err := tr.Tasks(context.Background())
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Printf("\n%-36s  %-30s  %-10s  %-12s  %-10s  %s\n",
			"ID", "TITLE", "TYPE", "STATUS", "PROGRESS", "DATES")
		fmt.Println(strings.Repeat("-", 125))
		for _, t := range tasks {
			fmt.Printf("%-36s  %-30s  %-10s  %-12s  %-10s  %s to %s\n",
				t.ID,
				truncate(t.Title, 30),
				t.Type,
				t.Status,
				fmt.Sprintf("%d%%", t.Progress),
				t.StartDate,
				t.EndDate,
			)
		}
		fmt.Printf("\nTotal: %d task(s), %d%% completed\n",
			len(tasks), views.ScheduleProgress(tasks))

		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update task fields",
	Long: `Update fields of an existing task. Only the flags you pass
change. Setting --status directly does not touch progress; use
'task toggle' for the coupled completed/100 behavior.

Example:
  gradtrack task update <id> --progress 60 --status in-progress`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := tracker.TaskUpdate{}
		changed := false
		if cmd.Flags().Changed("project") {
			update.ProjectID = &taskProjectID
			changed = true
		}
		if cmd.Flags().Changed("title") {
			update.Title = &taskTitle
			changed = true
		}
		if cmd.Flags().Changed("description") {
			update.Description = &taskDesc
			changed = true
		}
		if cmd.Flags().Changed("start") {
			update.StartDate = &taskStart
			changed = true
		}
		if cmd.Flags().Changed("end") {
			update.EndDate = &taskEnd
			changed = true
		}
		if cmd.Flags().Changed("progress") {
			update.Progress = &taskProgress
			changed = true
		}
		if cmd.Flags().Changed("type") {
			typ := models.ParseTaskType(taskType)
			update.Type = &typ
			changed = true
		}
		if cmd.Flags().Changed("status") {
			status := models.ParseTaskStatus(taskStatus)
			update.Status = &status
			changed = true
		}
		if !changed {
			return fmt.Errorf("specify at least one field to update")
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := tr.UpdateTask(context.Background(), args[0], update); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("task not found: %s", args[0])
			}
			return fmt.Errorf("update task: %w", err)
		}

		fmt.Printf("Task updated: %s\n", args[0])
		return nil
	},
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a task between completed and todo",
	Long: `Toggle a task's completion. Completing a task sets progress to
100; reverting to todo keeps the progress value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		task, err := tr.ToggleTaskStatus(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("task not found: %s", args[0])
			}
			return fmt.Errorf("toggle task: %w", err)
		}

		fmt.Printf("Task '%s' is now %s (%d%%)\n", task.Title, task.Status, task.Progress)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a schedule task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := tr.DeleteTask(context.Background(), args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("task not found: %s", args[0])
			}
			return fmt.Errorf("delete task: %w", err)
		}

		fmt.Printf("Task deleted: %s\n", args[0])
		return nil
	},
}

var taskWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly calendar",
	Long: `Show the Monday-start week containing the given date (default:
today), with each day's active tasks. Days show at most three tasks
plus an overflow count.

Examples:
  gradtrack task week
  gradtrack task week --date 2026-09-14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := time.Now()
		if taskWeekDate != "" {
			parsed, err := time.Parse(models.DateFormat, taskWeekDate)
			if err != nil {
				return fmt.Errorf("invalid --date, want yyyy-MM-dd: %w", err)
			}
			ref = parsed
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		tasks, err := tr.Tasks(context.Background())
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}

		week := views.WeekView(ref, tasks)
		fmt.Printf("\nWeek of %s\n\n", week[0].Date.Format(models.DateFormat))
		for _, day := range week {
			fmt.Printf("%s %s\n", day.Date.Format("Mon"), day.Date.Format(models.DateFormat))
			if len(day.Tasks) == 0 {
				fmt.Println("    -")
				continue
			}
			for _, t := range day.Tasks {
				mark := " "
				if t.Status == models.TaskStatusCompleted {
					mark = "x"
				}
				fmt.Printf("    [%s] %s (%d%%)\n", mark, truncate(t.Title, 40), t.Progress)
			}
			if day.Overflow > 0 {
				fmt.Printf("    ... and %d more\n", day.Overflow)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskToggleCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskWeekCmd)

	// Add flags
	taskAddCmd.Flags().StringVar(&taskProjectID, "project", "", "associated project ID (optional)")
	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "task title (required)")
	taskAddCmd.Flags().StringVar(&taskDesc, "description", "", "task description")
	taskAddCmd.Flags().StringVar(&taskStart, "start", "", "start date, yyyy-MM-dd (required)")
	taskAddCmd.Flags().StringVar(&taskEnd, "end", "", "end date, yyyy-MM-dd (required)")
	taskAddCmd.Flags().IntVar(&taskProgress, "progress", 0, "initial progress 0-100")
	taskAddCmd.Flags().StringVar(&taskType, "type", "task", "type: task or milestone")
	taskAddCmd.Flags().StringVar(&taskStatus, "status", "todo", "status: todo, in-progress, completed")

	// Update flags
	taskUpdateCmd.Flags().StringVar(&taskProjectID, "project", "", "new project ID")
	taskUpdateCmd.Flags().StringVar(&taskTitle, "title", "", "new title")
	taskUpdateCmd.Flags().StringVar(&taskDesc, "description", "", "new description")
	taskUpdateCmd.Flags().StringVar(&taskStart, "start", "", "new start date")
	taskUpdateCmd.Flags().StringVar(&taskEnd, "end", "", "new end date")
	taskUpdateCmd.Flags().IntVar(&taskProgress, "progress", 0, "new progress 0-100")
	taskUpdateCmd.Flags().StringVar(&taskType, "type", "", "new type")
	taskUpdateCmd.Flags().StringVar(&taskStatus, "status", "", "new status")

	// Week flags
	taskWeekCmd.Flags().StringVar(&taskWeekDate, "date", "", "reference date, yyyy-MM-dd (default: today)")
}
