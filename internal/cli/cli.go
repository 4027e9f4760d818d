package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by bad arguments rather than bad data.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// Run executes the squadtrim command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	opts := &globalOptions{argv: args}
	root := newRootCmd(opts, stdout, stderr)

	if len(args) == 0 {
		_ = root.Help()
		return ExitUsage
	}
	if name := args[0]; !strings.HasPrefix(name, "-") && name != "help" && !hasCommand(root, name) {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		root.SetOut(stderr)
		_ = root.Usage()
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	root.SetArgs(args)
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	var usage *usageError
	if errors.As(err, &usage) {
		if cmd != nil {
			fmt.Fprintln(stderr)
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return ExitUsage
	}
	return ExitError
}

func newRootCmd(opts *globalOptions, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "squadtrim",
		Short: "Compress SQuAD questions and review how answers change",
		Long: `squadtrim rewrites the questions of a SQuAD dataset to their most
informative words, scores predictions with the official exact match and F1
metrics, and samples the questions a model stopped answering correctly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.CompletionOptions.DisableDefaultCmd = true
	opts.register(root)

	root.AddCommand(
		newCompressCmd(opts),
		newEvaluateCmd(opts),
		newScoreCmd(opts),
		newRenderCmd(opts),
		newValidateCmd(opts),
		newInitCmd(opts),
	)
	return root
}

func hasCommand(root *cobra.Command, name string) bool {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return false
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
