package cli

import (
	"fmt"
	"solobill/internal/models"
	"solobill/internal/services"

	"github.com/spf13/cobra"
)

func NewMeetingCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Track meetings",
	}
	cmd.AddCommand(newMeetingAddCommand(opts))
	cmd.AddCommand(newMeetingListCommand(opts))
	cmd.AddCommand(newMeetingCancelCommand(opts))
	cmd.AddCommand(newMeetingDeleteCommand(opts))
	return cmd
}

func newMeetingAddCommand(opts *RootOptions) *cobra.Command {
	form := &models.MeetingForm{}
	var start string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a meeting for a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			form.Start, err = parseStartTime(start)
			if err != nil {
				return err
			}
			meeting, err := app.Service.AddMeeting(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added meeting %s (%s, %d minutes, %.2f)\n",
				meeting.Title, meeting.ID, meeting.Duration, meeting.Amount)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.ClientID, "client", "", "client id")
	cmd.Flags().StringVar(&form.Title, "title", "", "meeting title")
	cmd.Flags().StringVar(&start, "start", "", "start time, e.g. \"2026-08-30 10:00\"")
	cmd.Flags().IntVar(&form.Duration, "duration", 60, "duration in minutes")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newMeetingListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List meetings, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				data, err := app.Views.Meetings()
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			ledger := app.Service.Snapshot()
			meetings := services.MeetingsSorted(ledger)
			if len(meetings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meetings found")
				return nil
			}
			for _, m := range meetings {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-25s %-20s %4d min  %9.2f  %s\n",
					m.ID, m.StartTime.Local().Format("2006-01-02 15:04"), m.Title,
					services.ClientName(ledger, m.ClientID), m.Duration, m.Amount, m.Status)
			}
			return nil
		},
	}
}

func newMeetingCancelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booked meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.CancelMeeting(args[0])
		},
	}
}

func newMeetingDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.DeleteMeeting(args[0])
		},
	}
}
