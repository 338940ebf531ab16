package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/gradtrack/internal/host"
	"github.com/good-yellow-bee/gradtrack/internal/monitor"
	"github.com/good-yellow-bee/gradtrack/internal/storage"
)

var (
	notifyID    string
	notifyAll   bool
	notifyForce bool
)

// notifyCmd represents the notify command group
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Program announcement commands",
	Long: `Commands for the announcement inbox.

Announcements arrive from the background monitor (see 'notify monitor')
and stay unread until you mark them.

Examples:
  # Read the inbox
  gradtrack notify list

  # Mark one announcement read
  gradtrack notify read --id <id>

  # Mark everything read
  gradtrack notify read --all

  # Run the simulated announcement monitor in the foreground
  gradtrack notify monitor`,
}

var notifyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List announcements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		notifications, err := tr.Notifications(ctx)
		if err != nil {
			return fmt.Errorf("list notifications: %w", err)
		}

		if len(notifications) == 0 {
			fmt.Println("No announcements.")
			return nil
		}

		unread, err := tr.UnreadNotificationCount(ctx)
		if err != nil {
			return fmt.Errorf("count unread: %w", err)
		}

		fmt.Printf("\n%-36s  %-6s  %-40s  %-30s  %s\n",
			"ID", "READ", "TITLE", "PROGRAM", "PUBLISHED")
		fmt.Println(strings.Repeat("-", 130))
		for _, n := range notifications {
			read := ""
			if n.IsRead {
				read = "yes"
			}
			fmt.Printf("%-36s  %-6s  %-40s  %-30s  %s\n",
				n.ID,
				read,
				truncate(n.Title, 40),
				truncate(n.ProjectName, 30),
				n.PublishTime,
			)
		}
		fmt.Printf("\nTotal: %d announcement(s), %d unread\n", len(notifications), unread)

		return nil
	},
}

var notifyReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark announcements read",
	Long: `Mark a single announcement read with --id, or the whole inbox
with --all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if notifyID == "" && !notifyAll {
			return fmt.Errorf("specify --id or --all")
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		if notifyAll {
			changed, err := tr.MarkAllNotificationsRead(ctx)
			if err != nil {
				return fmt.Errorf("mark all read: %w", err)
			}
			fmt.Printf("Marked %d announcement(s) read\n", changed)
			return nil
		}

		if err := tr.MarkNotificationRead(ctx, notifyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("announcement not found: %s", notifyID)
			}
			return fmt.Errorf("mark read: %w", err)
		}
		fmt.Printf("Marked read: %s\n", notifyID)
		return nil
	},
}

var notifyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one announcement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := tr.DeleteNotification(context.Background(), args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("announcement not found: %s", args[0])
			}
			return fmt.Errorf("delete notification: %w", err)
		}

		fmt.Printf("Announcement deleted: %s\n", args[0])
		return nil
	},
}

var notifyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !notifyForce {
			fmt.Print("Delete all announcements? [y/N]: ")
			var confirm string
			fmt.Scanln(&confirm)
			if !strings.EqualFold(confirm, "y") {
				fmt.Println("Canceled.")
				return nil
			}
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := tr.ClearNotifications(context.Background())
		if err != nil {
			return fmt.Errorf("clear notifications: %w", err)
		}

		fmt.Printf("Deleted %d announcement(s)\n", removed)
		return nil
	},
}

var notifyOpenCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open an announcement's link in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		n, err := tr.Store().Notifications().GetByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get notification: %w", err)
		}
		if n == nil {
			return fmt.Errorf("announcement not found: %s", args[0])
		}
		if n.Link == "" {
			return fmt.Errorf("announcement has no link")
		}

		var h host.Host = host.System{}
		if os.Getenv("GRADTRACK_NO_BROWSER") != "" {
			h = host.Printer{Out: os.Stdout}
		}
		if err := h.OpenLink(n.Link); err != nil {
			return err
		}

		// Opening counts as reading.
		if !n.IsRead {
			if err := tr.MarkNotificationRead(ctx, n.ID); err != nil {
				return fmt.Errorf("mark read: %w", err)
			}
		}
		return nil
	},
}

var notifyMonitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the announcement monitor in the foreground",
	Long: `Run the simulated announcement monitor until interrupted. On each
interval it may file a new announcement for one of the preset
programs. Interval and probability come from the config file.

Example:
  gradtrack notify monitor`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCLIConfig()
		if err != nil {
			return err
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := monitor.New(tr,
			monitor.WithInterval(cfg.Monitor.Interval),
			monitor.WithChance(cfg.Monitor.Chance))

		fmt.Printf("Monitoring announcements every %s (Ctrl-C to stop)...\n", cfg.Monitor.Interval)
		if err := m.Run(ctx); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		fmt.Println("\nMonitor stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyListCmd)
	notifyCmd.AddCommand(notifyReadCmd)
	notifyCmd.AddCommand(notifyDeleteCmd)
	notifyCmd.AddCommand(notifyClearCmd)
	notifyCmd.AddCommand(notifyOpenCmd)
	notifyCmd.AddCommand(notifyMonitorCmd)

	// Read flags
	notifyReadCmd.Flags().StringVar(&notifyID, "id", "", "announcement ID")
	notifyReadCmd.Flags().BoolVar(&notifyAll, "all", false, "mark every announcement read")

	// Clear flags
	notifyClearCmd.Flags().BoolVar(&notifyForce, "force", false, "skip confirmation prompt")
}
