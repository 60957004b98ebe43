package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"podly/internal/credential"
	"podly/internal/ui"
)

// runInteractive is the bare `podly` experience: a menu that loops between
// browsing, booking, history and the credential gate until the user quits.
func runInteractive() error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	// Resolve the persisted session before the first menu render so the
	// header and sign in/out entry are right.
	if err := app.session.Initialize(context.Background()); err != nil {
		slog.Debug("Session check failed", "error", err)
	}

	for {
		menu := ui.NewMenuModel(app.session, app.notify)
		p := tea.NewProgram(menu)
		ui.BridgeNotifications(app.notify, p)

		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("failed to run menu: %w", err)
		}
		m, ok := final.(ui.MenuModel)
		if !ok || m.Quitting || m.Selected == "" || m.Selected == ui.MenuQuit {
			return nil
		}

		switch m.Selected {
		case ui.MenuBrowse:
			if err := runBrowser(app); err != nil {
				return err
			}
		case ui.MenuBookings:
			if err := bookingsCmd.RunE(bookingsCmd, nil); err != nil {
				fmt.Println(err)
			}
		case ui.MenuSignIn:
			if err := runCredentialForm(app, credential.ModeLogin); err != nil {
				return err
			}
		case ui.MenuSignOut:
			if err := app.session.Logout(); err != nil {
				fmt.Println(err)
			}
		}
	}
}

// runBrowser walks stores → pods and, when a pod is picked, drops into the
// booking screen for it.
func runBrowser(app *app) error {
	browser := ui.NewBrowserModel(app.client, app.notify)
	p := tea.NewProgram(browser)
	ui.BridgeNotifications(app.notify, p)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	m, ok := final.(ui.BrowserModel)
	if !ok || m.SelectedPod == nil {
		return nil
	}
	return runBooking(app, *m.SelectedPod)
}
