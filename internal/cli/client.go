package cli

import (
	"fmt"
	"solobill/internal/models"
	"solobill/internal/services"

	"github.com/spf13/cobra"
)

func NewClientCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}
	cmd.AddCommand(newClientAddCommand(opts))
	cmd.AddCommand(newClientListCommand(opts))
	cmd.AddCommand(newClientEditCommand(opts))
	cmd.AddCommand(newClientArchiveCommand(opts))
	cmd.AddCommand(newClientRestoreCommand(opts))
	cmd.AddCommand(newClientDeleteCommand(opts))
	return cmd
}

func clientFormFlags(cmd *cobra.Command, form *models.ClientForm) {
	cmd.Flags().StringVar(&form.Name, "name", "", "client name")
	cmd.Flags().StringVar(&form.Company, "company", "", "company")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	cmd.Flags().Float64Var(&form.HourlyRate, "rate", 0, "hourly rate (0 uses the default rate)")
}

func newClientAddCommand(opts *RootOptions) *cobra.Command {
	form := &models.ClientForm{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			client, err := app.Service.AddClient(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added client %s (%s)\n", client.Name, client.ID)
			return nil
		},
	}
	clientFormFlags(cmd, form)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newClientListCommand(opts *RootOptions) *cobra.Command {
	var archived bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active or archived clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				data, err := app.Views.Clients(archived)
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			ledger := app.Service.Snapshot()
			clients := services.ClientsByArchiveState(ledger, archived)
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clients found")
				return nil
			}
			for _, c := range clients {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-25s %-20s %8.2f/hour\n", c.ID, c.Name, c.Company, c.HourlyRate)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "show archived clients")
	return cmd
}

func newClientEditCommand(opts *RootOptions) *cobra.Command {
	form := &models.ClientForm{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			client, err := app.Service.EditClient(args[0], form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated client %s\n", client.Name)
			return nil
		},
	}
	clientFormFlags(cmd, form)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newClientArchiveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.ArchiveClient(args[0])
		},
	}
}

func newClientRestoreCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore an archived client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.RestoreClient(args[0])
		},
	}
}

func newClientDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client (meetings and invoices keep their reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.DeleteClient(args[0])
		},
	}
}
