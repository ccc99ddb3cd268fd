package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"solobill/internal/providers"
	"syscall"

	"github.com/spf13/cobra"
)

// NewShellCommand runs an interactive session over one shared store. Commands
// are the same as on the command line; the view cache actually earns its keep
// here because repeated lists hit it between mutations.
func NewShellCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App()
			if err != nil {
				return err
			}
			opts.inShell = true
			defer func() {
				opts.inShell = false
				// hand the app back closed so PersistentPostRunE does not
				// close it a second time
				opts.app = nil
				_ = app.Close()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(stop)

			lines := make(chan string)
			go func() {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					lines <- scanner.Text()
				}
				close(lines)
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "solobill shell — type a command, \"exit\" to quit")
			for {
				fmt.Fprint(out, "> ")
				select {
				case <-stop:
					app.Logger.Infof(providers.TypeCli, "Shutdown signal received")
					fmt.Fprintln(out)
					return nil
				case line, ok := <-lines:
					if !ok {
						return nil
					}
					fields := splitShellLine(line)
					if len(fields) == 0 {
						continue
					}
					if fields[0] == "exit" || fields[0] == "quit" {
						return nil
					}
					if fields[0] == "shell" {
						fmt.Fprintln(out, "already in a shell")
						continue
					}

					// A fresh command tree per line keeps flag state from
					// leaking between commands; the app stays shared.
					inner := newRootCommand(opts)
					inner.SetArgs(fields)
					inner.SetIn(cmd.InOrStdin())
					inner.SetOut(out)
					inner.SetErr(cmd.ErrOrStderr())
					if err := inner.Execute(); err != nil {
						fmt.Fprintln(out, "Error:", err)
					}
				}
			}
		},
	}
}
