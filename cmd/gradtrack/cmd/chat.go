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
)

// chatCmd runs the scripted assistant REPL
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the scripted assistant",
	Long: `Start an interactive chat with the scripted application
assistant. Replies come from a fixed keyword table; nothing leaves
your machine.

Commands inside the chat:
  /clear  start over
  /quit   leave the chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("chat needs an interactive terminal")
		}

		responder := assistant.NewResponder(nil)
		scanner := bufio.NewScanner(os.Stdin)

		fmt.Println(assistant.WelcomeMessage)
		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == "/quit" || line == "/exit":
				fmt.Println("Bye!")
				return nil
			case line == "/clear":
				fmt.Println(assistant.ClearedMessage)
				continue
			}

			if err := responder.Think(context.Background()); err != nil {
				return err
			}
			fmt.Println("\n" + responder.Reply(line))
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
