package cli

import (
	"fmt"
	"solobill/internal/models"
	"solobill/internal/services"

	"github.com/spf13/cobra"
)

func NewInvoiceCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Generate and manage invoices",
	}
	cmd.AddCommand(newInvoiceGenerateCommand(opts))
	cmd.AddCommand(newInvoiceListCommand(opts))
	cmd.AddCommand(newInvoicePayCommand(opts))
	cmd.AddCommand(newInvoiceDeleteCommand(opts))
	return cmd
}

func newInvoiceGenerateCommand(opts *RootOptions) *cobra.Command {
	form := &models.InvoiceForm{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an invoice from a client's booked meetings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			invoice, err := app.Service.GenerateInvoice(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s: %d meetings, total %.2f\n",
				invoice.InvoiceNumber, len(invoice.MeetingIDs), invoice.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.ClientID, "client", "", "client id")
	cmd.Flags().StringVar(&form.CutOffPeriod, "period", "", "billing period label, e.g. \"Jan 2026 (1st - 15th)\"")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}

func newInvoiceListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				data, err := app.Views.Invoices()
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			ledger := app.Service.Snapshot()
			invoices := services.InvoicesList(ledger)
			if len(invoices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No invoices found")
				return nil
			}
			for _, i := range invoices {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-20s %9.2f  due %s  %s\n",
					i.ID, i.InvoiceNumber, services.ClientName(ledger, i.ClientID),
					i.Total, i.DueDate.Local().Format("2006-01-02"), i.PaymentStatus)
			}
			return nil
		},
	}
}

func newInvoicePayCommand(opts *RootOptions) *cobra.Command {
	form := &models.PaymentForm{}
	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark an invoice as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			invoice, err := app.Service.MarkInvoicePaid(args[0], form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as paid\n", invoice.InvoiceNumber)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Method, "method", "", "payment method")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "payment notes")
	_ = cmd.MarkFlagRequired("method")
	return cmd
}

func newInvoiceDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			return app.Service.DeleteInvoice(args[0])
		},
	}
}
