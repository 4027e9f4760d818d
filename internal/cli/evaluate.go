package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"squadtrim/internal/runner"
	"squadtrim/internal/ui/summary"
)

func newEvaluateCmd(opts *globalOptions) *cobra.Command {
	var (
		seed       uint64
		sampleSize int
		htmlPath   string
	)
	cmd := &cobra.Command{
		Use:   "evaluate <original-dataset> <compressed-dataset> <original-predictions> <compressed-predictions> [sample-size] <output>",
		Short: "Score both runs and sample correctness flips",
		Long: `Score the predictions made on the original and compressed datasets, then
sample <sample-size> questions both runs answered exactly and the same
number of questions only the original run answered exactly.

The sample size comes from the optional fifth argument, --sample-size, or
sample.size in the config file, in that order of precedence.

Sampling is reproducible for a given --seed. The command fails without
writing a report when either set has fewer than <sample-size> questions.`,
		Example: `  squadtrim evaluate dev.json dev-short.json pred.json pred-short.json 10 review.json
  squadtrim evaluate dev.json dev-short.json pred.json pred-short.json review.json --sample-size 5 --seed 42 --html review.html`,
		Args: rangeArgs(5, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			k := cfg.SampleSize()
			if cmd.Flags().Changed("sample-size") {
				k = sampleSize
			}
			output := args[len(args)-1]
			if len(args) == 6 {
				if cmd.Flags().Changed("sample-size") {
					return usagef("sample size given both as argument and --sample-size")
				}
				k, err = parseCount("sample size", args[4])
				if err != nil {
					return err
				}
			}
			if k < 0 {
				return usagef("sample size must be >= 0, got %d", k)
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Sample.Seed
			}
			if htmlPath == "" && cfg.Output.HTMLReport {
				htmlPath = strings.TrimSuffix(output, filepath.Ext(output)) + ".html"
			}
			if htmlPath != "" && samePath(htmlPath, output) {
				return usagef("html report path %q is the same as the output report", htmlPath)
			}
			deps, err := opts.deps(cmd)
			if err != nil {
				return err
			}
			result, err := runner.Evaluate(cmd.Context(), runner.EvaluateParams{
				OriginalDatasetPath:       args[0],
				CompressedDatasetPath:     args[1],
				OriginalPredictionsPath:   args[2],
				CompressedPredictionsPath: args[3],
				SampleSize:                k,
				Seed:                      seed,
				OutputPath:                output,
				HTMLPath:                  htmlPath,
				ExpectedVersion:           cfg.Dataset.ExpectedVersion,
				CommandLine:               opts.commandLine(),
				Deps:                      deps,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summary.Scores(result.Report, opts.summaryOptions(cmd)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&sampleSize, "sample-size", "k", 0, "Questions to sample from each set (default: sample.size from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for sampling (default: sample.seed from config)")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Also write an HTML review page to this path")
	return cmd
}

// samePath reports whether two paths name the same file location.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
