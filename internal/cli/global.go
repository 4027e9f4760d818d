package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"squadtrim/internal/config"
	"squadtrim/internal/runner"
	"squadtrim/internal/ui/summary"
)

// newRunID is swapped in tests for stable ids.
var newRunID = runner.NewRunID

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	argv       []string
	configPath string
	verbose    bool
	logFormat  string
	noColor    bool
}

func (o *globalOptions) register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Path to config file (default: search for .squadtrim/config.yml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&o.logFormat, "log-format", "text", "Log format on stderr (text|json)")
	flags.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

func (o *globalOptions) validate() error {
	switch strings.ToLower(strings.TrimSpace(o.logFormat)) {
	case "", "text", "json":
		return nil
	default:
		return usagef("invalid log format %q (expected text|json)", o.logFormat)
	}
}

// loadConfig resolves the config file, falling back to defaults.
func (o *globalOptions) loadConfig() (config.Config, error) {
	cfg, _, err := config.Resolve(strings.TrimSpace(o.configPath))
	return cfg, err
}

// newLogger builds the slog logger for one invocation.
func (o *globalOptions) newLogger(stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(strings.TrimSpace(o.logFormat), "json") {
		return slog.New(slog.NewJSONHandler(stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(stderr, handlerOpts))
}

// deps builds runner dependencies with a run id fixed for the invocation.
func (o *globalOptions) deps(cmd *cobra.Command) (runner.Dependencies, error) {
	runID, err := newRunID()
	if err != nil {
		return runner.Dependencies{}, err
	}
	return runner.Dependencies{
		RunID:  func() (string, error) { return runID, nil },
		Logger: o.newLogger(cmd.ErrOrStderr()),
	}, nil
}

// commandLine reconstructs the invocation for reports.
func (o *globalOptions) commandLine() string {
	return strings.Join(append([]string{"squadtrim"}, o.argv...), " ")
}

func (o *globalOptions) summaryOptions(cmd *cobra.Command) summary.Options {
	return summary.Options{NoColor: summary.ResolveNoColor(o.noColor, cmd.OutOrStdout())}
}
