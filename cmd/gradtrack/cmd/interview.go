package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/good-yellow-bee/gradtrack/internal/assistant"
	"github.com/good-yellow-bee/gradtrack/internal/models"
)

var (
	interviewType    string
	interviewProjID  string
	interviewProject string
)

// interviewCmd represents the interview command group
var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Mock interview commands",
	Long: `Practice with a scripted mock interviewer. Three interview types
are available: general, professional, and english, each with its own
question bank. The full transcript is saved and can be reviewed with
'interview history'.

Examples:
  gradtrack interview start --type professional
  gradtrack interview history`,
}

var interviewStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a mock interview",
	Long: `Run a mock interview in the terminal. Answer each question and
press Enter; type /quit to stop early. The transcript is persisted
either way.

Examples:
  gradtrack interview start --type english
  gradtrack interview start --type general --project-name "Tsinghua MF"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interview needs an interactive terminal")
		}

		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		typ := models.ParseInterviewType(interviewType)
		iv := assistant.NewInterviewer(typ, nil)

		opening := iv.Opening()
		session, err := tr.StartInterview(ctx, typ, interviewProjID, interviewProject, opening)
		if err != nil {
			return fmt.Errorf("start interview: %w", err)
		}

		fmt.Println(opening)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "" {
				continue
			}
			if answer == "/quit" || answer == "/exit" {
				break
			}

			reply, done := iv.Next(answer)
			if err := tr.RecordInterviewExchange(ctx, session.ID, answer, reply); err != nil {
				return fmt.Errorf("record exchange: %w", err)
			}
			fmt.Println("\n" + reply)
			if done {
				break
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		if err := tr.EndInterview(ctx, session.ID); err != nil {
			return fmt.Errorf("end interview: %w", err)
		}
		fmt.Printf("\nTranscript saved: %s\n", session.ID)
		return nil
	},
}

var interviewHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		sessions, err := tr.InterviewSessions(context.Background())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No interview sessions yet.")
			return nil
		}

		fmt.Printf("\n%-36s  %-14s  %-25s  %-9s  %s\n",
			"ID", "TYPE", "PROGRAM", "MESSAGES", "STARTED")
		fmt.Println(strings.Repeat("-", 110))
		for _, s := range sessions {
			name := s.ProjectName
			if name == "" {
				name = "-"
			}
			fmt.Printf("%-36s  %-14s  %-25s  %-9d  %s\n",
				s.ID,
				s.Type,
				truncate(name, 25),
				len(s.Messages),
				s.StartedAt.Format("2006-01-02 15:04"),
			)
		}
		fmt.Printf("\nTotal: %d session(s)\n", len(sessions))

		return nil
	},
}

var interviewShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a session transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Close()

		session, err := tr.Store().Interviews().GetByID(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		fmt.Printf("\n%s session started %s\n",
			assistant.TypeLabel(session.Type),
			session.StartedAt.Format("2006-01-02 15:04"))
		if session.ProjectName != "" {
			fmt.Printf("Target program: %s\n", session.ProjectName)
		}
		fmt.Println()
		for _, m := range session.Messages {
			who := "You"
			if m.Role == models.RoleAssistant {
				who = "Interviewer"
			}
			fmt.Printf("--- %s (%s)\n%s\n\n", who, m.Timestamp.Format("15:04:05"), m.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)
	interviewCmd.AddCommand(interviewStartCmd)
	interviewCmd.AddCommand(interviewHistoryCmd)
	interviewCmd.AddCommand(interviewShowCmd)

	// Start flags
	interviewStartCmd.Flags().StringVar(&interviewType, "type", "general", "interview type: general, professional, english")
	interviewStartCmd.Flags().StringVar(&interviewProjID, "project", "", "target project ID (optional)")
	interviewStartCmd.Flags().StringVar(&interviewProject, "project-name", "", "target program name shown in the transcript")
}
