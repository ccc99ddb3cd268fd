package cli

import (
	"fmt"
	"solobill/internal/services"

	"github.com/spf13/cobra"
)

func NewNotificationCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "Review notifications",
	}
	cmd.AddCommand(newNotificationListCommand(opts))
	cmd.AddCommand(newNotificationReadCommand(opts))
	cmd.AddCommand(newNotificationDismissCommand(opts))
	cmd.AddCommand(newNotificationDeleteCommand(opts))
	return cmd
}

func newNotificationListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				data, err := app.Views.Notifications()
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			notifications := services.NotificationsList(app.Service.Snapshot())
			if len(notifications) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications")
				return nil
			}
			for _, n := range notifications {
				marker := "*"
				if n.IsRead {
					marker = " "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %-30s %s\n", marker, n.ID, n.Title, n.Message)
			}
			return nil
		},
	}
}

func newNotificationReadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.MarkNotificationRead(args[0])
		},
	}
}

func newNotificationDismissCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.DismissNotification(args[0])
		},
	}
}

func newNotificationDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.DeleteNotification(args[0])
		},
	}
}
