package cli

import (
	"fmt"
	"solobill/internal/models"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func NewSettingsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update the company profile",
	}
	cmd.AddCommand(newSettingsShowCommand(opts))
	cmd.AddCommand(newSettingsSaveCommand(opts))
	return cmd
}

func newSettingsShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			settings := app.Service.Settings()
			if opts.Format == "json" {
				data, err := json.MarshalIndent(settings, "", "  ")
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Company: %s\n", settings.CompanyName)
			fmt.Fprintf(cmd.OutOrStdout(), "Email:   %s\n", settings.CompanyEmail)
			fmt.Fprintf(cmd.OutOrStdout(), "Phone:   %s\n", settings.CompanyPhone)
			fmt.Fprintf(cmd.OutOrStdout(), "Default hourly rate: %.2f\n", settings.DefaultHourlyRate)
			return nil
		},
	}
}

func newSettingsSaveCommand(opts *RootOptions) *cobra.Command {
	form := &models.SettingsForm{}
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Update the profile; omitted flags keep their current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}

			current := app.Service.Settings()
			if !cmd.Flags().Changed("company-name") {
				form.CompanyName = current.CompanyName
			}
			if !cmd.Flags().Changed("email") {
				form.CompanyEmail = current.CompanyEmail
			}
			if !cmd.Flags().Changed("phone") {
				form.CompanyPhone = current.CompanyPhone
			}
			if !cmd.Flags().Changed("rate") {
				form.DefaultHourlyRate = current.DefaultHourlyRate
			}

			if _, err := app.Service.SaveSettings(form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.CompanyName, "company-name", "", "company name")
	cmd.Flags().StringVar(&form.CompanyEmail, "email", "", "company email")
	cmd.Flags().StringVar(&form.CompanyPhone, "phone", "", "company phone")
	cmd.Flags().Float64Var(&form.DefaultHourlyRate, "rate", 0, "default hourly rate")
	return cmd
}
