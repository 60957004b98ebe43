package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	Long:  `Clears the locally persisted token. Nothing is sent to the service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			prompt := &survey.Confirm{Message: "Sign out?", Default: false}
			if err := survey.AskOne(prompt, &yes); err != nil {
				return err
			}
			if !yes {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.session.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
