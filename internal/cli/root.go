package cli

import (
	"fmt"
	"solobill/internal"
	"solobill/internal/di"
	"solobill/internal/structures"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags plus the lazily assembled application,
// shared by every command in one process.
type RootOptions struct {
	ConfigPath string
	Debug      bool
	Format     string // "json" | "text"

	app     *internal.App
	inShell bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// App assembles the application on first use and memoizes it, so an
// interactive shell keeps one store, cache and log across commands.
func (o *RootOptions) App() (*internal.App, error) {
	if o.app != nil {
		return o.app, nil
	}
	app, err := di.InitApp(&structures.CliFlags{ConfigPath: o.ConfigPath, DebugMode: o.Debug})
	if err != nil {
		return nil, err
	}
	o.app = app
	return app, nil
}

// NewRootCommand creates the root command for the solobill CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solobill",
		Short: "Offline billing for a solo consultant",
		Long: `Solo Billing keeps clients, meetings, invoices and notifications in a
local store. Every change is persisted immediately; nothing ever leaves
the machine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// The shell owns the app lifetime while it runs.
			if opts.app != nil && !opts.inShell {
				return opts.app.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default: ~/.solobill/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "also log to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewClientCommand(opts))
	cmd.AddCommand(NewMeetingCommand(opts))
	cmd.AddCommand(NewInvoiceCommand(opts))
	cmd.AddCommand(NewNotificationCommand(opts))
	cmd.AddCommand(NewDashboardCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewMetricsCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
