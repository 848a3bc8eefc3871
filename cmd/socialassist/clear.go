package main

import (
	"fmt"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the library file and clear the library",
	Long: `Delete the backing JSON file and discard all content records.
This is destructive and requires --yes.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deletion")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if !clearYes {
		fmt.Println("Refusing to delete the library without --yes.")
		return nil
	}

	store := library.New(cfg.LibraryPath)
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear library: %w", err)
	}

	fmt.Printf("Library file %s deleted and content library cleared.\n", cfg.LibraryPath)
	return nil
}
