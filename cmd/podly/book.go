package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"podly/internal/api"
	"podly/internal/booking"
	"podly/internal/ui"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Assemble and submit a booking for a pod",
	Long: `Opens the booking screen for a pod: add one row per date, pick open
slots per row and watch the running total. Submission requires a signed-in
session; browsing slots does not.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		podID, _ := cmd.Flags().GetString("pod")
		if podID == "" {
			return fmt.Errorf("--pod is required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		pod, err := app.client.Pod(context.Background(), podID)
		if api.IsNotFound(err) {
			fmt.Printf("Pod %q not found.\n", podID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch pod: %s", api.UserMessage(err))
		}

		// Resolve the session in the background; booking submission checks
		// it when the user presses submit.
		go func() {
			if err := app.session.Initialize(context.Background()); err != nil {
				slog.Debug("Session check failed", "error", err)
			}
		}()

		return runBooking(app, *pod)
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.Flags().String("pod", "", "Pod id to book")
}

func runBooking(app *app, pod api.Pod) error {
	draft := booking.NewDraft(pod.ID, app.client)
	model := ui.NewBookingModel(pod, draft, app.client, app.session, app.notify)
	p := tea.NewProgram(model)
	ui.BridgeNotifications(app.notify, p)
	ui.BridgeDraft(draft, p)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run booking screen: %w", err)
	}
	if m, ok := final.(ui.BookingModel); ok && m.Submitted() {
		fmt.Println("Booking submitted.")
	}
	return nil
}
