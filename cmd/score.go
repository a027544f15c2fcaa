package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/studypal/internal/cli"
	"github.com/abhisek/studypal/internal/grader"
	"github.com/abhisek/studypal/internal/limits"
	"github.com/abhisek/studypal/internal/llm"
	"github.com/abhisek/studypal/internal/progress"
	"github.com/abhisek/studypal/internal/quiz"
	"github.com/abhisek/studypal/internal/scoring"
	"github.com/abhisek/studypal/internal/store"
	"github.com/spf13/cobra"
)

// attemptFile is the JSON shape of a quiz attempt on disk.
type attemptFile struct {
	User      string           `json:"user"`
	Topic     string           `json:"topic"`
	Questions []*quiz.Question `json:"questions"`
	Answers   []quiz.Answer    `json:"answers"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <attempt.json>",
	Short: "Score a quiz attempt and update the learning profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read attempt file: %w", err)
		}

		var attempt attemptFile
		if err := json.Unmarshal(data, &attempt); err != nil {
			return fmt.Errorf("parse attempt file: %w", err)
		}
		if u, _ := cmd.Flags().GetString("user"); u != "" {
			attempt.User = u
		}
		if t, _ := cmd.Flags().GetString("topic"); t != "" {
			attempt.Topic = t
		}
		if attempt.User == "" {
			attempt.User = "local"
		}
		if attempt.Topic == "" {
			return fmt.Errorf("attempt file has no topic and --topic was not given")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		limiter := limits.NewService(st.CounterRepo(), limits.DefaultConfig())
		ok, err := limiter.CanPerform(ctx, attempt.User, limits.ActionQuizAttempt)
		if err != nil {
			return fmt.Errorf("check usage limit: %w", err)
		}
		if !ok {
			return fmt.Errorf("quiz attempt limit reached for user %q", attempt.User)
		}

		// An unavailable provider downgrades open-ended grading to
		// fallback credit instead of failing the attempt.
		var batchGrader grader.BatchGrader
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Open-ended answers will receive half credit.")
		} else {
			batchGrader = grader.NewLLMGrader(provider, grader.DefaultConfig())
		}

		engine := scoring.NewEngine(batchGrader, scoring.DefaultConfig())
		svc := progress.NewService(engine, st.ProfileRepo(), st.EventRepo())

		outcome, err := svc.Record(ctx, attempt.User, attempt.Topic, attempt.Questions, attempt.Answers)
		if outcome == nil {
			return fmt.Errorf("score attempt: %w", err)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: results could not be fully saved:", err)
		}

		if incErr := limiter.Increment(ctx, attempt.User, limits.ActionQuizAttempt); incErr != nil {
			fmt.Fprintln(os.Stderr, "warning: could not record usage:", incErr)
		}

		fmt.Println(cli.RenderOutcome(outcome, attempt.Questions, attempt.Answers))
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringP("user", "u", "", "User ID (overrides the attempt file)")
	scoreCmd.Flags().StringP("topic", "t", "", "Topic (overrides the attempt file)")
}
