package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <name> <email> <password>",
		Short: "Register an account and print its token",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.client().Signup(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Token)
			return nil
		},
	}
}

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and print a token",
		Long:  "Prints a bearer token; export it as TASKTRACK_TOKEN or pass it with --token.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.client().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Token)
			return nil
		},
	}
}
