// Package cmd contains the CLI commands for gradtrack.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/gradtrack/internal/storage"
	"github.com/good-yellow-bee/gradtrack/internal/tracker"
)

var (
	// Used for flags
	verbose    bool
	configPath string
	dbPath     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gradtrack",
	Short: "GradTrack - Graduate School Application Tracker",
	Long: `GradTrack is a local-first tracker for graduate school applications.

Everything lives in a single SQLite file on your machine: projects,
uploaded documents, schedule tasks, program announcements, and mock
interview transcripts. No account, no network required.

Features:
  - Track applications from preparing through offer or rejection
  - Per-project document checklist with completion progress
  - Schedule tasks and milestones with a weekly calendar
  - Simulated announcement monitor for preset programs
  - Scripted chat assistant and mock interview practice

Examples:
  # List your applications
  gradtrack project list

  # Add an application from the preset catalog
  gradtrack project create --preset preset-1

  # Upload a transcript to a project
  gradtrack file upload --project <id> --category transcript --path transcript.pdf

  # See this week's schedule
  gradtrack task week`,
	// Run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		// Show help by default
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database file (overrides config)")
}

// PrintError prints an error message and exits if fatal is true.
func PrintError(msg string, fatal bool) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	if fatal {
		os.Exit(1)
	}
}

// PrintVerbose prints a message only if verbose mode is enabled.
func PrintVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// loadCLIConfig resolves the effective configuration: the --config
// file when given, defaults otherwise, with --db overriding the
// database path either way.
func loadCLIConfig() (*Config, error) {
	var cfg *Config
	var err error
	if configPath != "" {
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = DefaultConfig()
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, nil
}

// openStore opens the database, runs migrations, and seeds the preset
// catalog. The caller must Close the returned store.
func openStore() (*storage.SQLiteStorage, error) {
	cfg, err := loadCLIConfig()
	if err != nil {
		return nil, err
	}

	if dir := cfg.databaseDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	store := storage.NewSQLiteStorage(cfg.Database.Path)
	if err := store.Open(); err != nil {
		return nil, fmt.Errorf("open database at %s: %w", cfg.Database.Path, err)
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if err := store.EnsurePresetProjects(); err != nil {
		store.Close()
		return nil, fmt.Errorf("seed preset catalog: %w", err)
	}
	PrintVerbose("database ready at %s", cfg.Database.Path)
	return store, nil
}

// openTracker wraps openStore in the operation layer.
func openTracker() (*tracker.Tracker, *storage.SQLiteStorage, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return tracker.New(store), store, nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-2] + ".."
}
