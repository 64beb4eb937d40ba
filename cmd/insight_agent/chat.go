package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/reflection-insights/internal/analysis"
	"github.com/jonathan/reflection-insights/internal/chat"
	"github.com/jonathan/reflection-insights/internal/report"
	"github.com/jonathan/reflection-insights/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive reflection session in the terminal",
	Long:  "Run the guided question flow interactively on stdin/stdout, then print the analysis report. No database or API key required.",
	RunE:  runChat,
}

var chatUserName string

func init() {
	chatCmd.Flags().StringVar(&chatUserName, "name", "", "Name to greet you by")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	bank, err := chat.LoadBank()
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	session := &types.Session{
		ID:        uuid.New(),
		UserName:  chatUserName,
		CreatedAt: time.Now().UTC(),
	}

	fmt.Fprintln(os.Stdout, bank.Opening())

	var responses []types.Response
	scanner := bufio.NewScanner(os.Stdin)
	for !session.Completed {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		turn, err := bank.HandleMessage(session, message)
		if err != nil {
			return fmt.Errorf("chat turn failed: %w", err)
		}

		if turn.Recorded != nil {
			responses = append(responses, *turn.Recorded)
		}
		session.CategoryIndex = turn.NextIndex
		session.Completed = turn.Completed

		fmt.Fprintf(os.Stdout, "\n%s\n", turn.Reply)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if len(responses) == 0 {
		return nil
	}

	result, err := analysis.Analyze(cmd.Context(), session.ID, responses)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\n%s\n", report.TemplateNarrative(result))
	return nil
}
