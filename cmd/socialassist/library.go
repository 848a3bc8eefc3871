package main

import (
	"fmt"
	"strings"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/content"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "View the content library",
	RunE:  runLibrary,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
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

	records := store.Records()
	if len(records) == 0 {
		fmt.Println("Content library is empty.")
		return nil
	}

	fmt.Println("Content Library:")
	for i, rec := range records {
		languageName, err := content.LanguageName(rec.Language)
		if err != nil {
			languageName = rec.Language
		}

		fmt.Printf("\n%d. %s\n", i+1, rec.Title)
		fmt.Printf("URL: %s\n", rec.URL)
		fmt.Printf("Language: %s\n", languageName)
		fmt.Printf("Summary: %s\n", rec.Summary)
		fmt.Printf("Keywords: %s\n", strings.Join(rec.Keywords, ", "))
		fmt.Println("\nPlatform Posts:")
		for _, platform := range content.Platforms() {
			post, ok := rec.PlatformPosts[platform]
			if !ok {
				continue
			}
			fmt.Printf("\n%s:\n%s\n", content.DisplayName(platform), post)
		}
		posted := "No"
		if rec.Posted {
			posted = "Yes"
		}
		fmt.Printf("\nPosted: %s\n", posted)
		fmt.Println(strings.Repeat("-", 80))
	}

	return nil
}
