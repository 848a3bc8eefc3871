// Package assistant orchestrates extraction, generation, the content
// library, and the scheduler behind one façade that any caller (CLI,
// HTTP handler, test harness) can drive.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/content"
	"github.com/oanahulpoi/social-media-ai/internal/extractor"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/oanahulpoi/social-media-ai/internal/publisher"
	"github.com/oanahulpoi/social-media-ai/internal/scheduler"
)

// summaryRunes is the length of the stored content preview.
const summaryRunes = 200

// Extractor is the content extraction collaborator.
type Extractor interface {
	Extract(ctx context.Context, url string) (extractor.Extracted, error)
}

// Generator is the AI generation collaborator.
type Generator interface {
	PlatformPosts(ctx context.Context, text, title, language string) (map[string]string, error)
	Keywords(ctx context.Context, text string) ([]string, error)
}

// Assistant wires the collaborators to the library and scheduler.
type Assistant struct {
	cfg        *config.Config
	store      *library.Store
	engine     *scheduler.Engine
	extractor  Extractor
	generator  Generator
	dispatcher *publisher.Dispatcher
	health     *scheduler.Health
}

// Config holds the assistant's dependencies.
type Config struct {
	Cfg       *config.Config
	Store     *library.Store
	Engine    *scheduler.Engine
	Extractor Extractor
	Generator Generator
	Publisher publisher.Publisher
}

// New creates an assistant. The publisher defaults to console output.
func New(cfg Config) *Assistant {
	pub := cfg.Publisher
	if pub == nil {
		pub = publisher.Console{}
	}
	return &Assistant{
		cfg:        cfg.Cfg,
		store:      cfg.Store,
		engine:     cfg.Engine,
		extractor:  cfg.Extractor,
		generator:  cfg.Generator,
		dispatcher: publisher.NewDispatcher(cfg.Store, pub),
		health:     scheduler.NewHealth(),
	}
}

// Store returns the underlying library store.
func (a *Assistant) Store() *library.Store {
	return a.store
}

// Health returns the dispatch health tracker.
func (a *Assistant) Health() *scheduler.Health {
	return a.health
}

// ProcessURL extracts an article, generates platform posts and keywords,
// and appends the resulting record to the library. A duplicate
// (case-insensitive title + language) short-circuits and returns nil.
// Extraction and keyword failures degrade to empty values.
func (a *Assistant) ProcessURL(ctx context.Context, url, language string) (*content.Content, error) {
	if language == "" {
		language = a.cfg.DefaultLanguage
	}
	if _, err := content.LanguageName(language); err != nil {
		return nil, err
	}

	extracted, err := a.extractor.Extract(ctx, url)
	if err != nil {
		slog.Error("content extraction failed, continuing with empty content",
			"url", url, "error", err)
		extracted = extractor.Extracted{}
	}

	if a.store.IsDuplicate(extracted.Title, language) {
		slog.Info("duplicate content, skipping",
			"title", extracted.Title, "language", language)
		return nil, nil
	}

	posts, err := a.generator.PlatformPosts(ctx, extracted.Text, extracted.Title, language)
	if err != nil {
		return nil, fmt.Errorf("generate platform posts: %w", err)
	}

	keywords, err := a.generator.Keywords(ctx, extracted.Text)
	if err != nil {
		slog.Error("keyword extraction failed, continuing without keywords",
			"url", url, "error", err)
	}
	if keywords == nil {
		keywords = []string{}
	}

	rec := &content.Content{
		URL:            url,
		Title:          extracted.Title,
		Summary:        content.Summarize(extracted.Text, summaryRunes),
		PlatformPosts:  posts,
		Keywords:       keywords,
		Language:       language,
		ScheduledPosts: []*content.ScheduledPost{},
	}
	a.store.Append(rec)

	slog.Info("processed url", "url", url, "title", rec.Title, "language", language)
	return rec, nil
}

// SchedulePost schedules a record's post for one platform at hour:minute
// and returns the first occurrence. An unknown platform or an
// out-of-range time is rejected with no state change.
func (a *Assistant) SchedulePost(rec *content.Content, platform string, hour, minute int) (time.Time, error) {
	text, ok := rec.PlatformPosts[platform]
	if !ok {
		return time.Time{}, fmt.Errorf("no content available for platform: %s", platform)
	}

	sp := &content.ScheduledPost{
		Platform: platform,
		Content:  text,
	}

	first, err := a.engine.Arm(hour, minute, a.dispatch(rec, sp))
	if err != nil {
		return time.Time{}, err
	}

	sp.ScheduledTime = first
	a.store.AddSchedule(rec, sp)

	slog.Info("post scheduled", "platform", platform, "title", rec.Title,
		"scheduled_time", first.Format(time.RFC3339))
	return first, nil
}

// Rearm re-registers every pending schedule with the engine. Called
// after Load so schedules survive a process restart.
func (a *Assistant) Rearm(now time.Time) int {
	pending := a.store.PendingSchedules(now)
	for _, p := range pending {
		// Times loaded from disk were validated when first scheduled.
		if _, err := a.engine.Arm(p.Post.ScheduledTime.Hour(), p.Post.ScheduledTime.Minute(), a.dispatch(p.Record, p.Post)); err != nil {
			slog.Error("failed to re-arm schedule",
				"platform", p.Post.Platform, "error", err)
		}
	}
	return len(pending)
}

// dispatch builds the scheduler callback for one scheduled post.
func (a *Assistant) dispatch(rec *content.Content, sp *content.ScheduledPost) scheduler.Callback {
	return func(ctx context.Context) {
		if err := a.dispatcher.Dispatch(ctx, rec, sp); err != nil {
			a.health.SetUnhealthy("dispatch", err)
			return
		}
		a.health.SetHealthy("dispatch", "dispatched "+sp.Platform)
	}
}

// Save persists the library to its backing file.
func (a *Assistant) Save() error {
	return a.store.Save()
}

// Load replaces the library with the backing file's contents.
func (a *Assistant) Load() error {
	return a.store.Load()
}

// Clear deletes the backing file and empties the library.
func (a *Assistant) Clear() error {
	return a.store.Clear()
}
