package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oanahulpoi/social-media-ai/internal/content"
)

// Store is the slice of the library the dispatcher needs: posted-state
// queries, the posted-state transition, and persistence.
type Store interface {
	IsPosted(sp *content.ScheduledPost) bool
	MarkPosted(rec *content.Content, sp *content.ScheduledPost) bool
	Save() error
}

// Dispatcher publishes a scheduled post and persists the result.
type Dispatcher struct {
	store Store
	pub   Publisher
}

// NewDispatcher creates a dispatcher writing through the given store.
func NewDispatcher(store Store, pub Publisher) *Dispatcher {
	return &Dispatcher{store: store, pub: pub}
}

// Dispatch publishes a scheduled post once. The scheduler's triggers
// recur daily and are never deregistered, so an already-posted entry is
// a no-op: no publish, no save. A publish failure leaves the post
// pending for the next trigger.
func (d *Dispatcher) Dispatch(ctx context.Context, rec *content.Content, sp *content.ScheduledPost) error {
	if d.store.IsPosted(sp) {
		slog.Debug("scheduled post already published, skipping",
			"platform", sp.Platform, "title", rec.Title)
		return nil
	}

	if err := d.pub.Publish(ctx, sp.Platform, sp.Content); err != nil {
		slog.Error("publish failed, post stays pending",
			"platform", sp.Platform, "title", rec.Title, "error", err)
		return fmt.Errorf("publish to %s: %w", sp.Platform, err)
	}

	if !d.store.MarkPosted(rec, sp) {
		return nil
	}

	slog.Info("published scheduled post",
		"platform", sp.Platform, "title", rec.Title,
		"scheduled_time", sp.ScheduledTime.Format(time.RFC3339))

	if err := d.store.Save(); err != nil {
		slog.Error("failed to persist library after publish", "error", err)
		return fmt.Errorf("save library: %w", err)
	}

	return nil
}
