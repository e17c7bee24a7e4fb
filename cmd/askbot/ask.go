package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/domain/intent"
	logpkg "github.com/kailas-cloud/askbot/internal/logger"
)

// answerOutput mirrors the /api/question payload.
type answerOutput struct {
	ResponseText    string        `json:"responseText"`
	Query           string        `json:"query"`
	Rating          float64       `json:"rating"`
	Action          intent.Intent `json:"action"`
	IsFallback      bool          `json:"isFallback"`
	SimilarQuestion string        `json:"similarQuestion"`
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <text...>",
		Short: "Answer a single question and print the reply as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return runAsk(cmd.Context(), a, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questions the bot knows, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, q := range a.chat.AllQuestions() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), q); err != nil {
					return fmt.Errorf("write question: %w", err)
				}
			}
			return nil
		},
	}
}

// openApp builds the services for one-shot commands. Logs only surface warnings.
func openApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, env, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logpkg.NewLogger(env, "warn")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return buildApp(ctx, cfg, logger.With(zap.String("command", "cli")))
}

func runAsk(ctx context.Context, a *app, text string, w io.Writer) error {
	rep, err := a.chat.Answer(ctx, text)
	if err != nil {
		return fmt.Errorf("answer: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(answerOutput{
		ResponseText:    rep.Text,
		Query:           rep.Query,
		Rating:          rep.Rating,
		Action:          rep.Action,
		IsFallback:      rep.IsFallback,
		SimilarQuestion: rep.SimilarQuestion,
	}); err != nil {
		return fmt.Errorf("encode answer: %w", err)
	}
	return nil
}
