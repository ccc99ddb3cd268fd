package cli

import (
	"fmt"
	"solobill/internal/services"
	"time"

	"github.com/spf13/cobra"
)

func NewDashboardCommand(opts *RootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's meetings, hours, revenue and client count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}

			now := time.Now()
			if date != "" {
				now, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return err
				}
			}

			if opts.Format == "json" {
				data, err := app.Views.Dashboard(now)
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			summary := services.BuildDashboardSummary(app.Service.Snapshot(), now)
			fmt.Fprintf(cmd.OutOrStdout(), "Today's Meetings: %d\n", summary.TodayMeetings)
			fmt.Fprintf(cmd.OutOrStdout(), "Hours Tracked:    %.1f\n", summary.HoursTracked)
			fmt.Fprintf(cmd.OutOrStdout(), "Today's Revenue:  %.2f\n", summary.TodayRevenue)
			fmt.Fprintf(cmd.OutOrStdout(), "Total Clients:    %d\n", summary.TotalClients)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to summarize (YYYY-MM-DD, default today)")
	return cmd
}
