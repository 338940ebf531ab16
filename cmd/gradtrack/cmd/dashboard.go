package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/gradtrack/internal/views"
)

// dashboardCmd prints the overview numbers
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the application overview",
	Long: `Show the dashboard: project counts by status, unread
announcements, schedule progress, and the latest announcements.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		projects, err := tr.Projects(ctx)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		notifications, err := tr.Notifications(ctx)
		if err != nil {
			return fmt.Errorf("list notifications: %w", err)
		}
		tasks, err := tr.Tasks(ctx)
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}

		stats := views.Dashboard(projects, notifications)

		fmt.Println("\nOverview:")
		fmt.Printf("  Projects:        %d total, %d preparing, %d submitted\n",
			stats.TotalProjects, stats.PreparingProjects, stats.SubmittedProjects)
		fmt.Printf("  Announcements:   %d unread\n", stats.UnreadNotifications)
		fmt.Printf("  Schedule:        %d task(s), %d%% completed\n",
			len(tasks), views.ScheduleProgress(tasks))

		if len(notifications) > 0 {
			fmt.Println("\nLatest announcements:")
			limit := 5
			if len(notifications) < limit {
				limit = len(notifications)
			}
			for _, n := range notifications[:limit] {
				read := " "
				if n.IsRead {
					read = "x"
				}
				fmt.Printf("  [%s] %s (%s)\n", read, truncate(n.Title, 50), n.ProjectName)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
