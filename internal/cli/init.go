package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"squadtrim/internal/config"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold .squadtrim/config.yml",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(opts.configPath)
			if path == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				path = config.ConfigPath(wd)
			}
			if err := config.WriteScaffold(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
