package main

import (
	"fmt"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the library file",
	Long:  `Load the content library and write it back out, normalizing the file.`,
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
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
	if err := store.Save(); err != nil {
		return fmt.Errorf("save library: %w", err)
	}

	fmt.Println("Library saved successfully!")
	return nil
}
