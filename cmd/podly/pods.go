package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"podly/internal/api"
)

var podsCmd = &cobra.Command{
	Use:   "pods",
	Short: "List the pods of a store",
	RunE: func(cmd *cobra.Command, args []string) error {
		storeID, _ := cmd.Flags().GetString("store")
		if storeID == "" {
			return fmt.Errorf("--store is required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		pods, err := app.client.Pods(context.Background(), storeID)
		if err != nil {
			return fmt.Errorf("failed to list pods: %s", api.UserMessage(err))
		}
		if len(pods) == 0 {
			fmt.Println("No pods at this store.")
			return nil
		}
		for _, pod := range pods {
			fmt.Printf("%-12s %-24s %s pod, up to %d people\n", pod.ID, pod.Name, pod.PodType, pod.Capacity)
		}
		return nil
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List slots for a pod on a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		podID, _ := cmd.Flags().GetString("pod")
		date, _ := cmd.Flags().GetString("date")
		if podID == "" || date == "" {
			return fmt.Errorf("--pod and --date are required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		slots, err := app.client.Slots(context.Background(), podID, date)
		if err != nil {
			return fmt.Errorf("failed to list slots: %s", api.UserMessage(err))
		}
		if len(slots) == 0 {
			fmt.Println("No slots on that date.")
			return nil
		}
		for _, slot := range slots {
			status := "open"
			if !slot.IsAvailable {
				status = "taken"
			}
			fmt.Printf("%-10s %s–%s  %8d  %s\n", slot.SlotID, slot.StartTime, slot.EndTime, slot.UnitPrice, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(podsCmd)
	podsCmd.Flags().String("store", "", "Store id to list pods for")
	rootCmd.AddCommand(slotsCmd)
	slotsCmd.Flags().String("pod", "", "Pod id")
	slotsCmd.Flags().String("date", "", "Date (YYYY-MM-DD)")
}
