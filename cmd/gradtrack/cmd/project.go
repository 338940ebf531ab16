package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/gradtrack/internal/models"
	"github.com/good-yellow-bee/gradtrack/internal/storage"
	"github.com/good-yellow-bee/gradtrack/internal/tracker"
	"github.com/good-yellow-bee/gradtrack/internal/views"
)

var (
	projName     string
	projSchool   string
	projMajor    string
	projDesc     string
	projDeadline string
	projStatus   string
	projPreset   string
	projForce    bool
)

// projectCmd represents the project command group
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Application project commands",
	Long: `Commands for managing your application projects.

Each project is one program you are applying to, with its own status,
deadline, and document checklist.

Examples:
  # List all projects
  gradtrack project list

  # Create a project by hand
  gradtrack project create --name "Master of Finance" --school "Tsinghua University"

  # Create a project from the preset catalog
  gradtrack project create --preset preset-1

  # Show project details with document progress
  gradtrack project show <id>

  # Move a project to submitted
  gradtrack project update <id> --status submitted`,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Long: `List all application projects, oldest first.

Optionally filter by status with --status.

Example:
  gradtrack project list --status preparing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		var projects []*models.Project
		if projStatus != "" {
			projects, err = store.Projects().ListByStatus(ctx, models.ParseProjectStatus(projStatus))
		} else {
			projects, err = tr.Projects(ctx)
		}
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		fmt.Printf("\n%-36s  %-25s  %-22s  %-10s  %-10s  %s\n",
			"ID", "NAME", "SCHOOL", "STATUS", "DEADLINE", "CREATED")
		fmt.Println(strings.Repeat("-", 120))

		for _, p := range projects {
			fmt.Printf("%-36s  %-25s  %-22s  %-10s  %-10s  %s\n",
				p.ID,
				truncate(p.Name, 25),
				truncate(p.School, 22),
				p.Status,
				p.Deadline,
				p.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		fmt.Printf("\nTotal: %d project(s)\n", len(projects))

		return nil
	},
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long: `Create a new application project.

Either supply the fields yourself, or start from a catalog entry with
--preset (see 'gradtrack preset list' for the catalog).

Examples:
  gradtrack project create --name "Master of Finance" --school "Tsinghua University" --major Finance
  gradtrack project create --preset preset-3 --deadline 2026-09-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if projPreset == "" && projName == "" {
			return fmt.Errorf("--name or --preset is required")
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()

		var id string
		if projPreset != "" {
			id, err = tr.AddProjectFromPreset(ctx, projPreset)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("unknown preset: %s (see 'gradtrack preset list')", projPreset)
			}
			if err != nil {
				return fmt.Errorf("create project from preset: %w", err)
			}
			// Apply any overrides given alongside --preset.
			update := tracker.ProjectUpdate{}
			changed := false
			if projDeadline != "" {
				update.Deadline = &projDeadline
				changed = true
			}
			if projDesc != "" {
				update.Description = &projDesc
				changed = true
			}
			if changed {
				if err := tr.UpdateProject(ctx, id, update); err != nil {
					return fmt.Errorf("apply overrides: %w", err)
				}
			}
		} else {
			id, err = tr.AddProject(ctx, tracker.ProjectDraft{
				Name:        strings.TrimSpace(projName),
				School:      strings.TrimSpace(projSchool),
				Major:       strings.TrimSpace(projMajor),
				Description: strings.TrimSpace(projDesc),
				Deadline:    projDeadline,
				Status:      models.ProjectStatus(projStatus),
			})
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}
		}

		project, err := tr.Project(ctx, id)
		if err != nil {
			return fmt.Errorf("read back project: %w", err)
		}

		fmt.Printf("\nProject created:\n")
		fmt.Printf("  ID:     %s\n", project.ID)
		fmt.Printf("  Name:   %s\n", project.Name)
		fmt.Printf("  School: %s\n", project.School)
		fmt.Printf("  Status: %s\n", project.Status)

		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show project details",
	Long: `Show a project with its document checklist and completion progress.

Example:
  gradtrack project show 550e8400-e29b-41d4-a716-446655440000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		project, err := tr.Project(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		if project == nil {
			return fmt.Errorf("project not found: %s", args[0])
		}

		files, err := tr.FilesByProject(ctx, project.ID)
		if err != nil {
			return fmt.Errorf("list files: %w", err)
		}

		fmt.Println("\nProject Details:")
		fmt.Printf("  ID:          %s\n", project.ID)
		fmt.Printf("  Name:        %s\n", project.Name)
		fmt.Printf("  School:      %s\n", project.School)
		fmt.Printf("  Major:       %s\n", project.Major)
		fmt.Printf("  Description: %s\n", project.Description)
		fmt.Printf("  Deadline:    %s\n", project.Deadline)
		fmt.Printf("  Status:      %s\n", project.Status)
		fmt.Printf("  Created:     %s\n", project.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Updated:     %s\n", project.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Documents:   %d%% complete\n", views.CompletionPercent(files))

		groups := views.GroupFilesByCategory(files)
		fmt.Println("\nDocument Checklist:")
		for _, info := range models.FileCategories() {
			mark := " "
			if len(groups[info.Key]) > 0 {
				mark = "x"
			}
			fmt.Printf("  [%s] %-30s %d file(s)\n", mark, info.Label, len(groups[info.Key]))
		}

		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update project fields",
	Long: `Update fields of an existing project. Only the flags you pass
change; everything else keeps its value.

Examples:
  gradtrack project update <id> --status submitted
  gradtrack project update <id> --deadline 2026-10-15 --description "Round 2"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := tracker.ProjectUpdate{}
		changed := false
		if cmd.Flags().Changed("name") {
			update.Name = &projName
			changed = true
		}
		if cmd.Flags().Changed("school") {
			update.School = &projSchool
			changed = true
		}
		if cmd.Flags().Changed("major") {
			update.Major = &projMajor
			changed = true
		}
		if cmd.Flags().Changed("description") {
			update.Description = &projDesc
			changed = true
		}
		if cmd.Flags().Changed("deadline") {
			update.Deadline = &projDeadline
			changed = true
		}
		if cmd.Flags().Changed("status") {
			status := models.ParseProjectStatus(projStatus)
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

		if err := tr.UpdateProject(context.Background(), args[0], update); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("project not found: %s", args[0])
			}
			return fmt.Errorf("update project: %w", err)
		}

		fmt.Printf("Project updated: %s\n", args[0])
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Long: `Delete a project and all of its uploaded documents.

Schedule tasks referencing the project are kept.

Examples:
  gradtrack project delete <id>
  gradtrack project delete <id> --force  # skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		project, err := tr.Project(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		if project == nil {
			return fmt.Errorf("project not found: %s", args[0])
		}

		if !projForce {
			fmt.Printf("Delete project '%s' and all its documents? [y/N]: ", project.Name)
			var confirm string
			fmt.Scanln(&confirm)
			if !strings.EqualFold(confirm, "y") {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := tr.DeleteProject(ctx, project.ID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}

		fmt.Printf("Project deleted: %s\n", project.Name)
		return nil
	},
}

// presetCmd lists the built-in program catalog
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Preset program catalog",
	Long:  `Commands for browsing the built-in catalog of well-known programs.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	Long: `List the preset program catalog. Use an entry's ID with
'gradtrack project create --preset <id>'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		presets, err := store.Presets().List(context.Background())
		if err != nil {
			return fmt.Errorf("list presets: %w", err)
		}

		fmt.Printf("\n%-10s  %-25s  %-22s  %s\n", "ID", "NAME", "SCHOOL", "MAJOR")
		fmt.Println(strings.Repeat("-", 90))
		for _, p := range presets {
			fmt.Printf("%-10s  %-25s  %-22s  %s\n",
				p.ID, truncate(p.Name, 25), truncate(p.School, 22), p.Major)
		}
		fmt.Printf("\nTotal: %d preset(s)\n", len(presets))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd)

	// List flags
	projectListCmd.Flags().StringVar(&projStatus, "status", "", "filter by status: preparing, submitted, interview, offer, rejected")

	// Create flags
	projectCreateCmd.Flags().StringVar(&projName, "name", "", "project name")
	projectCreateCmd.Flags().StringVar(&projSchool, "school", "", "school name")
	projectCreateCmd.Flags().StringVar(&projMajor, "major", "", "major or program")
	projectCreateCmd.Flags().StringVar(&projDesc, "description", "", "project description")
	projectCreateCmd.Flags().StringVar(&projDeadline, "deadline", "", "application deadline (yyyy-MM-dd)")
	projectCreateCmd.Flags().StringVar(&projStatus, "status", "", "initial status (default: preparing)")
	projectCreateCmd.Flags().StringVar(&projPreset, "preset", "", "preset catalog ID to copy from")

	// Update flags
	projectUpdateCmd.Flags().StringVar(&projName, "name", "", "new project name")
	projectUpdateCmd.Flags().StringVar(&projSchool, "school", "", "new school name")
	projectUpdateCmd.Flags().StringVar(&projMajor, "major", "", "new major")
	projectUpdateCmd.Flags().StringVar(&projDesc, "description", "", "new description")
	projectUpdateCmd.Flags().StringVar(&projDeadline, "deadline", "", "new deadline (yyyy-MM-dd)")
	projectUpdateCmd.Flags().StringVar(&projStatus, "status", "", "new status")

	// Delete flags
	projectDeleteCmd.Flags().BoolVar(&projForce, "force", false, "skip confirmation prompt")
}
