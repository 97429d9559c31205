// Package cli defines the taskcli command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"tasktrack/internal/client"
	"tasktrack/internal/tui"
)

// App holds the persistent flag values shared by every subcommand.
type App struct {
	Server string
	Token  string
}

func (a *App) client() *client.Client {
	return client.New(a.Server, a.Token)
}

// NewRootCmd builds the root command. Running it without a subcommand
// starts the interactive TUI.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskcli",
		Short:        "Task tracker client (CLI + TUI)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return tui.Run(app.client())
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("TASKTRACK_SERVER", "http://localhost:3000"), "Server base URL")
	cmd.PersistentFlags().StringVar(&app.Token, "token", envOr("TASKTRACK_TOKEN", ""), "Bearer token (from signup/login)")

	cmd.AddCommand(newSignupCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRenameCmd(app))
	cmd.AddCommand(newRmCmd(app))

	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
