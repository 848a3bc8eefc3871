package main

import (
	"fmt"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/content"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/spf13/cobra"
)

var scheduledCmd = &cobra.Command{
	Use:   "scheduled",
	Short: "View scheduled posts",
	RunE:  runScheduled,
}

func init() {
	rootCmd.AddCommand(scheduledCmd)
}

func runScheduled(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store := library.New(cfg.LibraryPath)
	if err := store.Load(); err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	found := false
	for _, rec := range store.Records() {
		if len(rec.ScheduledPosts) == 0 {
			continue
		}
		if !found {
			fmt.Println("Scheduled Posts:")
			found = true
		}
		fmt.Printf("\nContent: %s\n", rec.Title)
		for _, sp := range rec.ScheduledPosts {
			status := "Pending"
			if sp.Posted {
				status = "Posted"
			}
			fmt.Printf("- %s: Scheduled for %s\n", content.DisplayName(sp.Platform), sp.ScheduledTime.Format("2006-01-02 15:04"))
			fmt.Printf("  Status: %s\n", status)
		}
	}

	if !found {
		fmt.Println("No scheduled posts found.")
	}
	return nil
}
