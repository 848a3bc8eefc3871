// Package scheduler runs deferred publications. Entries recur daily at a
// fixed hour:minute, matching the legacy day-granularity scheduler this
// system grew out of; callers must make their callbacks idempotent since
// a fired entry stays armed for the next day.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultPollInterval is how often the engine checks for due entries.
const DefaultPollInterval = 60 * time.Second

// Callback is invoked when an entry comes due. It runs synchronously on
// the engine's timer goroutine, so it must not block indefinitely.
type Callback func(ctx context.Context)

// entry is one armed time-of-day trigger.
type entry struct {
	hour   int
	minute int
	next   time.Time
	fn     Callback
}

// Engine fires armed callbacks once per day at their hour:minute,
// polling the wall clock on a fixed cadence.
type Engine struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	entries  []*entry
}

// Config holds engine configuration.
type Config struct {
	// PollInterval is the wake-up cadence. Defaults to DefaultPollInterval.
	PollInterval time.Duration

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// New creates an engine. Run must be called to start firing.
func New(cfg Config) *Engine {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		interval: interval,
		now:      now,
	}
}

// Arm registers a callback to fire daily at hour:minute and returns the
// first occurrence. If that time of day has already passed, the first
// occurrence is tomorrow.
func (e *Engine) Arm(hour, minute int, fn Callback) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("minute must be between 0 and 59, got %d", minute)
	}

	next := FirstOccurrence(e.now(), hour, minute)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, &entry{
		hour:   hour,
		minute: minute,
		next:   next,
		fn:     fn,
	})

	return next, nil
}

// Len returns the number of armed entries.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// Run polls for due entries until the context is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("starting scheduler engine", "poll_interval", e.interval)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler engine shutting down")
			return ctx.Err()

		case <-ticker.C:
			e.runPending(ctx, e.now())
		}
	}
}

// runPending fires every entry whose due time has passed and re-arms it
// for the next day. The next occurrence is recomputed from the entry's
// hour:minute rather than shifted by a fixed duration, so the firing
// time stays on the wall clock across DST transitions. Callbacks run
// outside the engine lock, in order.
func (e *Engine) runPending(ctx context.Context, now time.Time) {
	e.mu.Lock()
	var due []Callback
	for _, ent := range e.entries {
		if !ent.next.After(now) {
			due = append(due, ent.fn)
			ent.next = FirstOccurrence(now.Add(time.Minute), ent.hour, ent.minute)
		}
	}
	e.mu.Unlock()

	for _, fn := range due {
		fn(ctx)
	}
}

// FirstOccurrence returns the next wall-clock time at hour:minute on or
// after now, rolling to tomorrow when the time of day is already past.
// The rollover uses calendar arithmetic so the hour:minute holds across
// DST transitions.
func FirstOccurrence(now time.Time, hour, minute int) time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if t.Before(now) {
		t = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return t
}
