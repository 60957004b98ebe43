package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"podly/internal/api"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List store locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		stores, err := app.client.Stores(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list stores: %s", api.UserMessage(err))
		}
		if len(stores) == 0 {
			fmt.Println("No stores yet.")
			return nil
		}
		for _, store := range stores {
			fmt.Printf("%-12s %-24s %s (%s)\n", store.ID, store.Name, store.Address, store.OpenHours)
		}
		return nil
	},
}

var storesShowCmd = &cobra.Command{
	Use:   "show [store-id]",
	Short: "Show one store, with its description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		store, err := app.client.Store(context.Background(), args[0])
		if api.IsNotFound(err) {
			fmt.Printf("Store %q not found.\n", args[0])
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch store: %s", api.UserMessage(err))
		}

		fmt.Printf("%s\n%s\nOpen: %s\n", store.Name, store.Address, store.OpenHours)
		if store.Description != "" {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err == nil {
				if out, err := renderer.Render(store.Description); err == nil {
					fmt.Print(out)
					return nil
				}
			}
			// Fall back to the raw markdown if rendering is unavailable.
			fmt.Println("\n" + store.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(storesCmd)
	storesCmd.AddCommand(storesShowCmd)
}
