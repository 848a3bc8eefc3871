package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/oanahulpoi/social-media-ai/internal/assistant"
	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/extractor"
	"github.com/oanahulpoi/social-media-ai/internal/generator"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/oanahulpoi/social-media-ai/internal/scheduler"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "socialassist",
	Short: "An AI assistant for social media content",
	Long: `SocialAssist turns web articles into platform-tailored social posts,
keeps them in a content library, and publishes them on a schedule.`,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	// Set up logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// buildAssistant wires the full dependency graph for a command run.
func buildAssistant(cfg *config.Config) *assistant.Assistant {
	return assistant.New(assistant.Config{
		Cfg:    cfg,
		Store:  library.New(cfg.LibraryPath),
		Engine: scheduler.New(scheduler.Config{PollInterval: cfg.PollInterval}),
		Extractor: extractor.New(extractor.Config{
			Timeout: cfg.HTTPTimeout,
		}),
		Generator: generator.NewClient(generator.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.OpenAITimeout,
		}),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
