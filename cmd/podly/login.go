package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"podly/internal/credential"
	"podly/internal/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the booking service",
	Long: `Opens the sign-in form. With --email and --no-tui the password is
prompted on the plain terminal instead, which suits scripts and narrow
environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		noTUI, _ := cmd.Flags().GetBool("no-tui")
		if noTUI {
			return runLoginPrompt(cmd, app)
		}
		return runCredentialForm(app, credential.ModeLogin)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().String("email", "", "Email address to sign in with")
	loginCmd.Flags().Bool("no-tui", false, "Prompt on the plain terminal instead of the TUI form")
}

// runCredentialForm opens the bubbletea credential gate in the given mode.
func runCredentialForm(app *app, mode credential.Mode) error {
	model := ui.NewCredentialFormModel(mode, app.gate, app.notify)
	p := tea.NewProgram(model)
	ui.BridgeNotifications(app.notify, p)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run form: %w", err)
	}

	if m, ok := final.(ui.CredentialFormModel); ok && m.Done() {
		if identity := app.session.CurrentIdentity(); identity != nil {
			fmt.Printf("Signed in as %s <%s>\n", identity.DisplayName, identity.Email)
		}
	}
	return nil
}

// runLoginPrompt is the survey-based fallback for terminals where the TUI is
// unwanted.
func runLoginPrompt(cmd *cobra.Command, app *app) error {
	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		if err := survey.AskOne(&survey.Input{Message: "Email:"}, &email, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	var password string
	if err := survey.AskOne(&survey.Password{Message: "Password:"}, &password, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if !app.gate.SubmitLogin(context.Background(), email, password) {
		if n := app.notify.Current(); n != nil {
			return fmt.Errorf("login failed: %s", n.Text)
		}
		return fmt.Errorf("login failed")
	}

	if identity := app.session.CurrentIdentity(); identity != nil {
		fmt.Printf("Signed in as %s <%s>\n", identity.DisplayName, identity.Email)
	} else {
		fmt.Println("Signed in; profile will load on the next run.")
	}
	return nil
}
