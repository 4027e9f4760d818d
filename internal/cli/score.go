package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"squadtrim/internal/report"
	"squadtrim/internal/runner"
	"squadtrim/internal/ui/summary"
)

// scoreOutput is the JSON printed by the score command.
type scoreOutput struct {
	ExactMatch float64 `json:"exact_match"`
	F1         float64 `json:"f1"`
}

func newScoreCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "score <dataset> <predictions>",
		Short: "Score one prediction file with exact match and F1",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "table" {
				return usagef("invalid format %q (expected json|table)", format)
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			deps, err := opts.deps(cmd)
			if err != nil {
				return err
			}
			result, err := runner.Score(cmd.Context(), runner.ScoreParams{
				DatasetPath:     args[0],
				PredictionsPath: args[1],
				ExpectedVersion: cfg.Dataset.ExpectedVersion,
				Deps:            deps,
			})
			if err != nil {
				return err
			}
			if format == "table" {
				fmt.Fprint(cmd.OutOrStdout(), summary.Score(result, opts.summaryOptions(cmd)))
				return nil
			}
			payload, err := report.EncodeJSON(scoreOutput{ExactMatch: result.ExactMatch, F1: result.F1})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json|table)")
	return cmd
}
