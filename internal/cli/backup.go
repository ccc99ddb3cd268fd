package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func NewExportCommand(opts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a backup document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}

			now := time.Now()
			data, err := app.Service.ExportJSON(now)
			if err != nil {
				return err
			}

			if out == "-" {
				return writeJSON(cmd, data)
			}
			if out == "" {
				out = fmt.Sprintf("solo-billing-backup-%s.json", now.Format("2006-01-02"))
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (\"-\" for stdout)")
	return cmd
}

func NewImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup document",
		Long: `Replace all five collections with the contents of a backup document.
There is no merge: current data is discarded once the document parses.
A document that fails to parse leaves current data untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := app.Service.ImportJSON(data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Import complete")
			return nil
		},
	}
}
