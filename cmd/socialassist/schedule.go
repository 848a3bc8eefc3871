package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/spf13/cobra"
)

var scheduleAt string

var scheduleCmd = &cobra.Command{
	Use:   "schedule <content-number> <platform>",
	Short: "Schedule a platform post for daily publication",
	Long: `Schedule one of a record's platform posts for publication at a
time of day. Content numbers match the "library" listing. The serve
daemon picks up pending schedules from the library file.

Examples:
  socialassist schedule 1 x --at 09:00
  socialassist schedule 2 linkedin --at 14:30`,
	Args: cobra.ExactArgs(2),
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleAt, "at", "", "Time of day as HH:MM (required)")
	_ = scheduleCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	asst := buildAssistant(cfg)
	if err := asst.Load(); err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return fmt.Errorf("invalid content number: %s", args[0])
	}
	rec := asst.Store().Record(index - 1)
	if rec == nil {
		return fmt.Errorf("no content at number %d (library has %d records)", index, asst.Store().Len())
	}

	hour, minute, err := parseTimeOfDay(scheduleAt)
	if err != nil {
		return err
	}

	platform := strings.ToLower(args[1])
	first, err := asst.SchedulePost(rec, platform, hour, minute)
	if err != nil {
		return fmt.Errorf("schedule post: %w", err)
	}

	if err := asst.Save(); err != nil {
		return fmt.Errorf("save library: %w", err)
	}

	fmt.Printf("Post scheduled for %s at %s\n", platform, first.Format("2006-01-02 15:04"))
	return nil
}

// parseTimeOfDay parses "HH:MM". Range validation happens in the
// scheduler engine.
func parseTimeOfDay(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
