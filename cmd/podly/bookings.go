package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"podly/internal/api"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Show your booking and payment history",
	Long: `Lists your bookings with their payment totals. The last successful
fetch is cached locally; when the service is unreachable the cached copy is
shown and labeled with its age.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := context.Background()
		if err := app.session.Initialize(ctx); err != nil {
			slog.Debug("Session check failed", "error", err)
		}
		identity := app.session.CurrentIdentity()
		if identity == nil {
			fmt.Println("Not signed in. Run 'podly login'.")
			return nil
		}

		offline, _ := cmd.Flags().GetBool("offline")
		if offline {
			return printCachedBookings(app, identity.ID)
		}

		bookings, err := app.client.Bookings(ctx, app.session.Token(), viper.GetInt("history_limit"))
		if err != nil {
			fmt.Println("Service unreachable, showing cached history.")
			return printCachedBookings(app, identity.ID)
		}

		if payload, err := json.Marshal(bookings); err == nil {
			if err := app.storage.SaveBookingSnapshot(identity.ID, string(payload)); err != nil {
				slog.Warn("Failed to cache booking history", "error", err)
			}
		}

		printBookings(bookings)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookingsCmd)
	bookingsCmd.Flags().Bool("offline", false, "Show the cached history without calling the service")
}

func printCachedBookings(app *app, userID string) error {
	snap, err := app.storage.GetBookingSnapshot(userID)
	if err != nil {
		return fmt.Errorf("failed to read cached history: %w", err)
	}
	if snap == nil {
		fmt.Println("No cached history yet.")
		return nil
	}
	var bookings []api.Booking
	if err := json.Unmarshal([]byte(snap.Payload), &bookings); err != nil {
		return fmt.Errorf("failed to decode cached history: %w", err)
	}
	fmt.Printf("Cached %s\n", snap.FetchedAt.Format("2006-01-02 15:04"))
	printBookings(bookings)
	return nil
}

func printBookings(bookings []api.Booking) {
	if len(bookings) == 0 {
		fmt.Println("No bookings yet.")
		return
	}
	for _, b := range bookings {
		where := b.PodName
		if b.StoreName != "" {
			where += " @ " + b.StoreName
		}
		fmt.Printf("%-12s %-24s %-10s total %d (%d payments)\n",
			b.ID, where, b.Status, b.TotalPaid(), len(b.Payments))
	}
}
