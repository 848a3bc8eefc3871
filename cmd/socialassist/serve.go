package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oanahulpoi/social-media-ai/internal/assistant"
	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/extractor"
	"github.com/oanahulpoi/social-media-ai/internal/generator"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/oanahulpoi/social-media-ai/internal/scheduler"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the publication daemon",
	Long: `Run the daemon that watches the clock and publishes scheduled
posts, persisting the library after each publication.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	engine := scheduler.New(scheduler.Config{PollInterval: cfg.PollInterval})
	asst := assistant.New(assistant.Config{
		Cfg:    cfg,
		Store:  library.New(cfg.LibraryPath),
		Engine: engine,
		Extractor: extractor.New(extractor.Config{
			Timeout: cfg.HTTPTimeout,
		}),
		Generator: generator.NewClient(generator.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.OpenAITimeout,
		}),
	})

	slog.Info("loading content library", "path", cfg.LibraryPath)
	if err := asst.Load(); err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	rearmed := asst.Rearm(time.Now())
	slog.Info("starting publication daemon",
		"poll_interval", cfg.PollInterval,
		"pending_schedules", rearmed,
	)

	// Run the engine in the background
	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.Run(ctx)
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			return fmt.Errorf("scheduler error: %w", err)
		}
	}

	if st := asst.Health().GetStatus("dispatch"); st != nil && !st.Healthy {
		slog.Warn("last dispatch was unhealthy", "error", st.LastError)
	}

	slog.Info("shutting down...")
	cancel()

	return nil
}
