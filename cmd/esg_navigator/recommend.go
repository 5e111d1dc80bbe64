package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/esg-navigator/internal/catalog"
	"github.com/jonathan/esg-navigator/internal/logger"
	"github.com/jonathan/esg-navigator/internal/recommend"
	"github.com/jonathan/esg-navigator/internal/types"
	"github.com/spf13/cobra"
)

var recommendAnswers []string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print ranked framework recommendations for quiz answers",
	Long: `Scores every framework against the given answers and prints the ranked
recommendations as JSON. Answers are key=value pairs keyed by topic
(objective, scope, priorities) or by question ID (q1, q2, q3). Repeat a key
to give several values.`,
	Example: `  esg_navigator recommend --answer objective=compliance --answer scope=comprehensive
  esg_navigator recommend -a q1=materiality -a q3=climate -a q3=nature`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringArrayVarP(&recommendAnswers, "answer", "a", nil, "Answer as key=value (repeatable)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	answers, err := parseAnswers(recommendAnswers)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	data, err := loadDataset(context.Background(), cfg, logger.Discard())
	if err != nil {
		return err
	}

	return writeRecommendations(cmd.OutOrStdout(), catalog.New(data), recommend.Default(), answers)
}

// parseAnswers turns key=value pairs into Answers. Repeated keys accumulate.
func parseAnswers(pairs []string) (types.Answers, error) {
	answers := make(types.Answers, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid answer %q: expected key=value", pair)
		}
		answers[key] = append(answers[key], value)
	}
	return answers, nil
}

func writeRecommendations(w io.Writer, svc *catalog.Service, scorer *recommend.Scorer, answers types.Answers) error {
	answers = recommend.NormalizeAnswers(answers, svc.ListSelectorQuestions())
	return writeJSON(w, scorer.Recommend(svc.ListFrameworks(), answers))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}
