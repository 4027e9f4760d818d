package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"squadtrim/internal/report"
)

func newRenderCmd(_ *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <report.json> <output.html>",
		Short: "Render a review report as an HTML page",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.LoadReview(args[0])
			if err != nil {
				return err
			}
			page, err := report.RenderHTML(cmd.Context(), rep)
			if err != nil {
				return err
			}
			if err := report.WriteFileAtomic(args[1], []byte(page)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", args[1])
			return nil
		},
	}
}
