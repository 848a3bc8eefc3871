package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/content"
	"github.com/spf13/cobra"
)

var processLanguage string

var processCmd = &cobra.Command{
	Use:   "process <url>",
	Short: "Process an article URL into platform posts",
	Long: `Extract an article, generate platform-tailored posts and keywords
with AI, and add the result to the content library.

Examples:
  socialassist process https://example.com/article
  socialassist process https://example.com/article --language es`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processLanguage, "language", "", "Language code for the generated posts (default from config)")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForProcessing(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	asst := buildAssistant(cfg)
	if err := asst.Load(); err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	language := strings.ToLower(processLanguage)
	if language == "" {
		language = cfg.DefaultLanguage
	}
	// English is the declared fallback for unsupported codes.
	if _, err := content.LanguageName(language); err != nil {
		slog.Warn("unsupported language code, using English", "language", language)
		language = content.DefaultLanguage
	}

	rec, err := asst.ProcessURL(ctx, args[0], language)
	if err != nil {
		return fmt.Errorf("process url: %w", err)
	}
	if rec == nil {
		fmt.Println("Content with this title and language already exists.")
		return nil
	}

	if err := asst.Save(); err != nil {
		return fmt.Errorf("save library: %w", err)
	}

	languageName, _ := content.LanguageName(rec.Language)
	fmt.Println("\nProcessed Content:")
	fmt.Printf("Title: %s\n", rec.Title)
	fmt.Printf("Language: %s\n", languageName)
	fmt.Println("\nPlatform Posts:")
	for _, platform := range content.Platforms() {
		fmt.Printf("\n%s:\n%s\n", content.DisplayName(platform), rec.PlatformPosts[platform])
	}
	fmt.Printf("\nKeywords: %s\n", strings.Join(rec.Keywords, ", "))

	return nil
}
