package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy/internal/event"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List all available events",
	Long:  `Display a list of all events that can be played, with their IDs and titles.`,
	Run: func(cmd *cobra.Command, args []string) {
		events := event.List()

		if len(events) == 0 {
			fmt.Println("No events available.")
			return
		}

		fmt.Println("Available events:")
		fmt.Println()

		maxIDLen := 0
		for _, info := range events {
			if len(info.ID) > maxIDLen {
				maxIDLen = len(info.ID)
			}
		}

		for _, info := range events {
			fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, info.Title)
		}

		fmt.Println()
		fmt.Println("Run 'slidy play --event <id>' to play one.")
	},
}
