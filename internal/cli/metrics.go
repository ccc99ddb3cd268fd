package cli

import (
	"github.com/spf13/cobra"
)

func NewMetricsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Dump collected metrics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Metrics.Dump(cmd.OutOrStdout())
		},
	}
}
