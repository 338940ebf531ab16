package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/gradtrack/internal/models"
	"github.com/good-yellow-bee/gradtrack/internal/tracker"
)

var (
	fileProjectID string
	fileCategory  string
	filePath      string
	fileName      string
	fileOut       string
	fileForce     bool
)

// fileCmd represents the file command group
var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Project document commands",
	Long: `Commands for managing uploaded documents.

Documents belong to a project and one of ten fixed categories. The
file content is stored inside the database, so the original file can
be moved or deleted afterwards.

Examples:
  # Upload a transcript
  gradtrack file upload --project <id> --category transcript --path transcript.pdf

  # List a project's documents
  gradtrack file list --project <id>

  # Export a stored document back to disk
  gradtrack file export <file-id> --out ./transcript.pdf`,
}

var fileUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a document to a project",
	Long: `Read a file from disk and store it under a project.

Categories: transcript, ranking, english, recommendation, statement,
resume, paper, internship, study, other. Unknown categories fall back
to other.

Example:
  gradtrack file upload --project <id> --category resume --path resume.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileProjectID == "" {
			return fmt.Errorf("--project is required")
		}
		if filePath == "" {
			return fmt.Errorf("--path is required")
		}

		content, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		name := fileName
		if name == "" {
			name = filepath.Base(filePath)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(filePath))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		project, err := tr.Project(ctx, fileProjectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		if project == nil {
			return fmt.Errorf("project not found: %s", fileProjectID)
		}

		id, err := tr.AddFile(ctx, tracker.FileDraft{
			ProjectID: project.ID,
			Category:  models.ParseFileCategory(fileCategory),
			Name:      name,
			MIMEType:  mimeType,
			Content:   content,
		})
		if err != nil {
			return fmt.Errorf("store file: %w", err)
		}

		fmt.Printf("Uploaded %s (%d bytes) to '%s' as %s\n",
			name, len(content), project.Name, id)
		return nil
	},
}

var fileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's documents",
	Long: `List the documents stored under a project, optionally filtered
by category.

Examples:
  gradtrack file list --project <id>
  gradtrack file list --project <id> --category recommendation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileProjectID == "" {
			return fmt.Errorf("--project is required")
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		var files []*models.ProjectFile
		if fileCategory != "" {
			files, err = tr.FilesByCategory(ctx, fileProjectID, models.ParseFileCategory(fileCategory))
		} else {
			files, err = tr.FilesByProject(ctx, fileProjectID)
		}
		if err != nil {
			return fmt.Errorf("list files: %w", err)
		}

		if len(files) == 0 {
			fmt.Println("No documents found.")
			return nil
		}

		fmt.Printf("\n%-36s  %-30s  %-25s  %-10s  %s\n",
			"ID", "NAME", "CATEGORY", "SIZE", "UPLOADED")
		fmt.Println(strings.Repeat("-", 120))
		for _, f := range files {
			fmt.Printf("%-36s  %-30s  %-25s  %-10d  %s\n",
				f.ID,
				truncate(f.Name, 30),
				models.CategoryLabel(f.Category),
				f.Size,
				f.UploadedAt.Format("2006-01-02 15:04"),
			)
		}
		fmt.Printf("\nTotal: %d document(s)\n", len(files))

		return nil
	},
}

var fileExportCmd = &cobra.Command{
	Use:   "export <file-id>",
	Short: "Write a stored document back to disk",
	Long: `Export a stored document's content to a file. Defaults to the
original file name in the working directory.

Example:
  gradtrack file export <file-id> --out ./downloads/transcript.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		file, err := tr.File(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get file: %w", err)
		}
		if file == nil {
			return fmt.Errorf("file not found: %s", args[0])
		}

		out := fileOut
		if out == "" {
			out = file.Name
		}
		if err := os.WriteFile(out, file.Content, 0o644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}

		fmt.Printf("Exported %s (%d bytes) to %s\n", file.Name, file.Size, out)
		return nil
	},
}

var fileDeleteCmd = &cobra.Command{
	Use:   "delete <file-id>",
	Short: "Delete a stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		file, err := tr.File(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get file: %w", err)
		}
		if file == nil {
			return fmt.Errorf("file not found: %s", args[0])
		}

		if !fileForce {
			fmt.Printf("Delete document '%s'? [y/N]: ", file.Name)
			var confirm string
			fmt.Scanln(&confirm)
			if !strings.EqualFold(confirm, "y") {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := tr.DeleteFile(ctx, file.ID); err != nil {
			return fmt.Errorf("delete file: %w", err)
		}

		fmt.Printf("Document deleted: %s\n", file.Name)
		return nil
	},
}

var fileCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the document categories",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("\n%-16s  %-30s  %s\n", "KEY", "LABEL", "ACCEPTS")
		fmt.Println(strings.Repeat("-", 70))
		for _, info := range models.FileCategories() {
			fmt.Printf("%-16s  %-30s  %s\n", info.Key, info.Label, info.Accept)
		}
	},
}

func init() {
	rootCmd.AddCommand(fileCmd)
	fileCmd.AddCommand(fileUploadCmd)
	fileCmd.AddCommand(fileListCmd)
	fileCmd.AddCommand(fileExportCmd)
	fileCmd.AddCommand(fileDeleteCmd)
	fileCmd.AddCommand(fileCategoriesCmd)

	// Upload flags
	fileUploadCmd.Flags().StringVar(&fileProjectID, "project", "", "project ID (required)")
	fileUploadCmd.Flags().StringVar(&fileCategory, "category", "other", "document category")
	fileUploadCmd.Flags().StringVar(&filePath, "path", "", "file to upload (required)")
	fileUploadCmd.Flags().StringVar(&fileName, "name", "", "stored name (default: file name)")

	// List flags
	fileListCmd.Flags().StringVar(&fileProjectID, "project", "", "project ID (required)")
	fileListCmd.Flags().StringVar(&fileCategory, "category", "", "filter by category")

	// Export flags
	fileExportCmd.Flags().StringVar(&fileOut, "out", "", "output path (default: original name)")

	// Delete flags
	fileDeleteCmd.Flags().BoolVar(&fileForce, "force", false, "skip confirmation prompt")
}
