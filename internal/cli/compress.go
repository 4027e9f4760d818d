package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"squadtrim/internal/question"
	"squadtrim/internal/runner"
	"squadtrim/internal/ui/summary"
)

func newCompressCmd(opts *globalOptions) *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "compress <dataset> <output> [length]",
		Short: "Rewrite every question to its most informative words",
		Long: `Rewrite every question of a SQuAD dataset, keeping the words that are
frequent in the question's own context and rare across the whole corpus.
Kept words stay in their original order.

The target length comes from the optional third argument, --length, or the
config file, in that order of precedence.`,
		Example: `  squadtrim compress dev-v1.1.json dev-short.json 3
  squadtrim compress dev-v1.1.json dev-short.json --length 5`,
		Args: rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			n := cfg.QuestionLength()
			if cmd.Flags().Changed("length") {
				n = length
			}
			if len(args) == 3 {
				if cmd.Flags().Changed("length") {
					return usagef("length given both as argument and --length")
				}
				n, err = parseCount("length", args[2])
				if err != nil {
					return err
				}
			}
			if n < 0 {
				return usagef("length must be >= 0, got %d", n)
			}
			deps, err := opts.deps(cmd)
			if err != nil {
				return err
			}
			result, err := runner.Compress(cmd.Context(), runner.CompressParams{
				DatasetPath:    args[0],
				OutputPath:     args[1],
				QuestionLength: n,
				Tokenizer: question.TokenizerOptions{
					KeepApostrophes: cfg.Compress.KeepApostrophes,
					KeepHyphens:     cfg.Compress.KeepHyphens,
					KeepSlashes:     cfg.Compress.KeepSlashes,
				},
				ExpectedVersion: cfg.Dataset.ExpectedVersion,
				Deps:            deps,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summary.Compression(result.RunID, result.Stats, result.QuestionLength, opts.summaryOptions(cmd)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 0, "Number of words to keep per question")
	return cmd
}

// parseCount parses a non-negative integer argument.
func parseCount(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, usagef("%s must be an integer, got %q", name, value)
	}
	if n < 0 {
		return 0, usagef("%s must be >= 0, got %d", name, n)
	}
	return n, nil
}
