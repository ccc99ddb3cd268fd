package cli

import (
	"fmt"
	"solobill/internal/services"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type statusResponse struct {
	Status              string `json:"status"`
	Backend             string `json:"backend"`
	DataDir             string `json:"dataDir"`
	Clients             int    `json:"clients"`
	Meetings            int    `json:"meetings"`
	Invoices            int    `json:"invoices"`
	Notifications       int    `json:"notifications"`
	UnreadNotifications int    `json:"unreadNotifications"`
}

func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store health and record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}

			counts := app.Service.Counts()
			unread := 0
			for _, n := range services.NotificationsList(app.Service.Snapshot()) {
				if !n.IsRead {
					unread++
				}
			}

			resp := statusResponse{
				Status:              "ok",
				Backend:             app.Conf.Storage.Backend,
				DataDir:             app.Conf.Storage.Dir,
				Clients:             counts["clients"],
				Meetings:            counts["meetings"],
				Invoices:            counts["invoices"],
				Notifications:       counts["notifications"],
				UnreadNotifications: unread,
			}

			if opts.Format == "json" {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status:        %s\n", resp.Status)
			fmt.Fprintf(cmd.OutOrStdout(), "Storage:       %s (%s)\n", resp.Backend, resp.DataDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Clients:       %d\n", resp.Clients)
			fmt.Fprintf(cmd.OutOrStdout(), "Meetings:      %d\n", resp.Meetings)
			fmt.Fprintf(cmd.OutOrStdout(), "Invoices:      %d\n", resp.Invoices)
			fmt.Fprintf(cmd.OutOrStdout(), "Notifications: %d (%d unread)\n", resp.Notifications, resp.UnreadNotifications)
			return nil
		},
	}
}
