package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"squadtrim/internal/config"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the squadtrim config file",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(opts.configPath)
			if path == "" {
				found, err := config.FindConfigPath("")
				if err != nil {
					return err
				}
				path = found
			}
			if _, err := config.Load(path); err != nil {
				return fmt.Errorf("validation failed:\n%w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Config OK")
			return nil
		},
	}
}
