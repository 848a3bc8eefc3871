package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oanahulpoi/social-media-ai/internal/config"
	"github.com/oanahulpoi/social-media-ai/internal/content"
	"github.com/oanahulpoi/social-media-ai/internal/extractor"
	"github.com/oanahulpoi/social-media-ai/internal/library"
	"github.com/oanahulpoi/social-media-ai/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	out extractor.Extracted
	err error
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (extractor.Extracted, error) {
	return f.out, f.err
}

type fakeGenerator struct {
	posts    map[string]string
	keywords []string
	kwErr    error
}

func (f *fakeGenerator) PlatformPosts(ctx context.Context, text, title, language string) (map[string]string, error) {
	return f.posts, nil
}

func (f *fakeGenerator) Keywords(ctx context.Context, text string) ([]string, error) {
	return f.keywords, f.kwErr
}

type signalPublisher struct {
	mu        sync.Mutex
	published []string
	ch        chan string
}

func newSignalPublisher() *signalPublisher {
	return &signalPublisher{ch: make(chan string, 8)}
}

func (p *signalPublisher) Publish(ctx context.Context, platform, text string) error {
	p.mu.Lock()
	p.published = append(p.published, platform)
	p.mu.Unlock()
	p.ch <- platform
	return nil
}

func (p *signalPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func threePosts() map[string]string {
	return map[string]string{
		"x":        "x post",
		"linkedin": "linkedin post",
		"facebook": "facebook post",
	}
}

func fiveKeywords() []string {
	return []string{"go", "scheduling", "social", "media", "automation"}
}

// harness bundles an assistant with its injectable pieces.
type harness struct {
	asst  *Assistant
	store *library.Store
	eng   *scheduler.Engine
	clock *fixedClock
	pub   *signalPublisher
	ext   *fakeExtractor
	gen   *fakeGenerator
	path  string
}

func newHarness(t *testing.T, interval time.Duration) *harness {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.json")
	clock := &fixedClock{now: time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)}
	store := library.New(path)
	eng := scheduler.New(scheduler.Config{PollInterval: interval, Now: clock.Now})
	pub := newSignalPublisher()
	ext := &fakeExtractor{out: extractor.Extracted{
		Title: "Article A",
		Text:  strings.Repeat("Interesting article text. ", 20),
	}}
	gen := &fakeGenerator{posts: threePosts(), keywords: fiveKeywords()}

	asst := New(Config{
		Cfg:       &config.Config{LibraryPath: path, DefaultLanguage: "en"},
		Store:     store,
		Engine:    eng,
		Extractor: ext,
		Generator: gen,
		Publisher: pub,
	})

	return &harness{asst: asst, store: store, eng: eng, clock: clock, pub: pub, ext: ext, gen: gen, path: path}
}

func TestAssistant_ProcessURL(t *testing.T) {
	h := newHarness(t, time.Minute)

	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, 1, h.store.Len())
	assert.Equal(t, "Article A", rec.Title)
	assert.Equal(t, "en", rec.Language)
	assert.Len(t, rec.PlatformPosts, 3)
	assert.Len(t, rec.Keywords, 5)
	assert.NotNil(t, rec.ScheduledPosts, "schedules must serialize as an array, not null")
	assert.False(t, rec.Posted)
	assert.True(t, strings.HasSuffix(rec.Summary, "..."))
	assert.LessOrEqual(t, len([]rune(rec.Summary)), 203)
}

func TestAssistant_ProcessURL_Duplicate(t *testing.T) {
	h := newHarness(t, time.Minute)

	first, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)
	require.NotNil(t, first)

	dup, err := h.asst.ProcessURL(context.Background(), "https://example.com/a-again", "en")
	require.NoError(t, err)
	assert.Nil(t, dup)
	assert.Equal(t, 1, h.store.Len())

	// Same title in another language is not a duplicate
	other, err := h.asst.ProcessURL(context.Background(), "https://example.com/a-es", "es")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.Equal(t, 2, h.store.Len())
}

func TestAssistant_ProcessURL_ExtractionFailure(t *testing.T) {
	h := newHarness(t, time.Minute)
	h.ext.err = errors.New("connection refused")
	h.ext.out = extractor.Extracted{}

	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/broken", "en")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "", rec.Title)
	assert.Equal(t, "", rec.Summary)
}

func TestAssistant_ProcessURL_KeywordFailure(t *testing.T) {
	h := newHarness(t, time.Minute)
	h.gen.kwErr = errors.New("rate limited")

	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotNil(t, rec.Keywords, "keywords must serialize as an array, not null")
	assert.Empty(t, rec.Keywords)
	assert.Len(t, rec.PlatformPosts, 3)
}

func TestAssistant_ProcessURL_UnknownLanguage(t *testing.T) {
	h := newHarness(t, time.Minute)

	_, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "xx")
	assert.Error(t, err)
	assert.Equal(t, 0, h.store.Len())
}

func TestAssistant_SchedulePost_Validation(t *testing.T) {
	h := newHarness(t, time.Minute)
	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)

	t.Run("unknown platform", func(t *testing.T) {
		_, err := h.asst.SchedulePost(rec, "tiktok", 9, 0)
		assert.Error(t, err)
		assert.Empty(t, rec.ScheduledPosts)
		assert.Equal(t, 0, h.eng.Len())
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := h.asst.SchedulePost(rec, "x", 24, 0)
		assert.Error(t, err)
		assert.Empty(t, rec.ScheduledPosts)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, err := h.asst.SchedulePost(rec, "x", 9, 60)
		assert.Error(t, err)
		assert.Empty(t, rec.ScheduledPosts)
	})

	t.Run("midnight accepted", func(t *testing.T) {
		first, err := h.asst.SchedulePost(rec, "x", 0, 0)
		require.NoError(t, err)
		// 00:00 has passed at the clock's 08:00, so it rolls to tomorrow
		assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.Local), first)
		assert.Len(t, rec.ScheduledPosts, 1)
	})
}

func TestAssistant_SchedulePost_CopiesContent(t *testing.T) {
	h := newHarness(t, time.Minute)
	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)

	first, err := h.asst.SchedulePost(rec, "x", 9, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local), first)

	sp := rec.ScheduledPosts[0]
	assert.Equal(t, "x", sp.Platform)
	assert.Equal(t, "x post", sp.Content)
	assert.False(t, sp.Posted)
	assert.False(t, rec.Posted)
}

func TestAssistant_Rearm(t *testing.T) {
	h := newHarness(t, time.Minute)
	now := h.clock.Now()

	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)
	rec.ScheduledPosts = []*content.ScheduledPost{
		{Platform: "x", Content: "x post", ScheduledTime: now.Add(time.Hour)},
		{Platform: "linkedin", Content: "li post", ScheduledTime: now.Add(-time.Hour)},
		{Platform: "facebook", Content: "fb post", ScheduledTime: now.Add(time.Hour), Posted: true},
	}
	require.NoError(t, h.asst.Save())

	// A fresh process: load and re-arm
	engine := scheduler.New(scheduler.Config{PollInterval: time.Minute, Now: h.clock.Now})
	asst := New(Config{
		Cfg:       &config.Config{LibraryPath: h.path, DefaultLanguage: "en"},
		Store:     library.New(h.path),
		Engine:    engine,
		Extractor: h.ext,
		Generator: h.gen,
		Publisher: h.pub,
	})
	require.NoError(t, asst.Load())

	rearmed := asst.Rearm(now)
	assert.Equal(t, 1, rearmed)
	assert.Equal(t, 1, engine.Len())
}

// TestAssistant_Scenario walks the full flow: process a URL, schedule a
// post for 09:00, let the engine fire, and check the persisted library.
func TestAssistant_Scenario(t *testing.T) {
	h := newHarness(t, 5*time.Millisecond)

	rec, err := h.asst.ProcessURL(context.Background(), "https://example.com/a", "en")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, 1, h.store.Len())
	require.False(t, rec.Posted)

	first, err := h.asst.SchedulePost(rec, "x", 9, 0)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local), first)
	require.Len(t, rec.ScheduledPosts, 1)
	sp := rec.ScheduledPosts[0]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go h.eng.Run(ctx)

	// Cross the scheduled time and wait for the dispatch
	h.clock.Set(time.Date(2026, 6, 1, 9, 1, 0, 0, time.Local))
	select {
	case platform := <-h.pub.ch:
		assert.Equal(t, "x", platform)
	case <-ctx.Done():
		t.Fatal("scheduled post was not published before timeout")
	}

	require.Eventually(t, func() bool {
		return h.store.IsPosted(sp)
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, rec.Posted, "record with its only schedule posted is fully posted")

	// Dispatch persists the library and records health once it finishes
	var raw []map[string]any
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(h.path)
		if err != nil {
			return false
		}
		raw = nil
		if err := json.Unmarshal(data, &raw); err != nil {
			return false
		}
		return len(raw) == 1 && raw[0]["posted"] == true
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "https://example.com/a", raw[0]["url"])
	posts := raw[0]["scheduled_posts"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, true, posts[0].(map[string]any)["posted"])
	assert.True(t, h.asst.Health().IsOverallHealthy())

	cancel()
}
