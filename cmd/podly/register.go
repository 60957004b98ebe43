package main

import (
	"github.com/spf13/cobra"

	"podly/internal/credential"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the booking service",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		return runCredentialForm(app, credential.ModeRegister)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
