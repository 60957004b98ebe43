package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.session.Initialize(context.Background()); err != nil {
			// Could not verify right now; the token (if any) stays put.
			slog.Debug("Session check failed", "error", err)
		}

		identity := app.session.CurrentIdentity()
		if identity == nil {
			fmt.Println("Not signed in. Run 'podly login'.")
			return nil
		}
		fmt.Printf("%s <%s>\n", identity.DisplayName, identity.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
