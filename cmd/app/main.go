package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yanqian/hr-assistant/internal/domain/assistant"
	"github.com/yanqian/hr-assistant/internal/infra/config"
	"github.com/yanqian/hr-assistant/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("hr-assistant: %v", err)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hr-assistant",
		Short:         "HR and payroll FAQ assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	cmd.AddCommand(serveCmd(), askCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and demo page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	return app.Run(ctx)
}

func askCmd() *cobra.Command {
	var (
		jsonOutput     bool
		conversationID string
	)
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer questions and exit",
		Long: "Answers the question given as arguments. Without arguments, questions are read " +
			"from stdin one per line and share a single conversation, so follow-ups such as an " +
			"employee ID after a leave question work within one run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if conversationID != "" && !cfg.Redis.Enabled {
				return errors.New("--conversation needs redis.enabled; without it conversations end with the process, pipe several questions on stdin instead")
			}
			questions, err := askQuestions(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := initializeAssistant(cfg, logger.NewWithWriter(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, question := range questions {
				resp, err := svc.Answer(cmd.Context(), assistant.Request{
					Question:       question,
					ConversationID: conversationID,
				})
				if err != nil {
					return err
				}
				conversationID = resp.ConversationID
				if err := printAnswer(out, resp, jsonOutput); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print each response as a JSON document")
	cmd.Flags().StringVar(&conversationID, "conversation", "", "continue a conversation kept in redis")
	return cmd
}

func askQuestions(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var questions []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			questions = append(questions, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("no question given")
	}
	return questions, nil
}

func printAnswer(out io.Writer, resp assistant.Response, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	fmt.Fprintf(out, "> %s\n%s\n", resp.Question, resp.Answer)
	fmt.Fprintf(out, "(source: %s, score: %.2f, conversation: %s)\n\n", resp.Source, resp.Score, resp.ConversationID)
	return nil
}
