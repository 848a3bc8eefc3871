// Package library implements the content library: an in-memory ordered
// collection of content records snapshotted to a single JSON file.
//
// The store is the single owner of the records. Both the caller's
// goroutine and the scheduler's dispatch callback mutate records through
// it, so every access goes through the store mutex.
package library

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oanahulpoi/social-media-ai/internal/content"
)

// Store holds the content library and its backing file path.
type Store struct {
	mu      sync.Mutex
	path    string
	records []*content.Content
}

// New creates a store backed by the given JSON file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append adds a record to the library. Duplicate checking is the
// caller's responsibility via IsDuplicate.
func (s *Store) Append(rec *content.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// IsDuplicate reports whether a record with the same title
// (case-insensitive) and the same language code already exists.
func (s *Store) IsDuplicate(title, language string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if strings.EqualFold(rec.Title, title) && rec.Language == language {
			return true
		}
	}
	return false
}

// Len returns the number of records in the library.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns a snapshot of the record slice. The records themselves
// are shared, so callers must treat them as read-only.
func (s *Store) Records() []*content.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*content.Content, len(s.records))
	copy(out, s.records)
	return out
}

// Record returns the record at index i, or nil if out of range.
func (s *Store) Record(i int) *content.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return nil
	}
	return s.records[i]
}

// Save serializes the full library to the backing file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	records := s.records
	if records == nil {
		records = []*content.Content{}
	}

	// The file schema wants arrays, never null, for the collection fields.
	for _, rec := range records {
		if rec.Keywords == nil {
			rec.Keywords = []string{}
		}
		if rec.ScheduledPosts == nil {
			rec.ScheduledPosts = []*content.ScheduledPost{}
		}
		if rec.PlatformPosts == nil {
			rec.PlatformPosts = map[string]string{}
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write library: %w", err)
	}

	return nil
}

// Load replaces the in-memory collection with the backing file's
// contents. A missing file is not an error: the library is left empty.
// Malformed JSON is fatal to the load.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no existing library file, starting empty", "path", s.path)
			s.records = nil
			return nil
		}
		return fmt.Errorf("read library: %w", err)
	}

	var records []*content.Content
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse library %s: %w", s.path, err)
	}

	s.records = records
	return nil
}

// Pending is a scheduled post together with its owning record,
// returned from PendingSchedules for re-arming after a restart.
type Pending struct {
	Record *content.Content
	Post   *content.ScheduledPost
}

// PendingSchedules returns every scheduled post that has not been
// published and whose scheduled time is still after now.
func (s *Store) PendingSchedules(now time.Time) []Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []Pending
	for _, rec := range s.records {
		for _, sp := range rec.ScheduledPosts {
			if !sp.Posted && sp.ScheduledTime.After(now) {
				pending = append(pending, Pending{Record: rec, Post: sp})
			}
		}
	}
	return pending
}

// AddSchedule appends a scheduled post to a record and recomputes the
// record's aggregate posted flag. A fully-posted record picking up a new
// unposted schedule goes back to unposted.
func (s *Store) AddSchedule(rec *content.Content, sp *content.ScheduledPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ScheduledPosts = append(rec.ScheduledPosts, sp)
	rec.RefreshPosted()
}

// IsPosted reports whether a scheduled post has already been published.
func (s *Store) IsPosted(sp *content.ScheduledPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sp.Posted
}

// MarkPosted marks a scheduled post as published and recomputes the
// owning record's aggregate posted flag. It reports whether any state
// changed.
func (s *Store) MarkPosted(rec *content.Content, sp *content.ScheduledPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp.Posted {
		return false
	}
	sp.Posted = true
	rec.RefreshPosted()
	return true
}

// Clear deletes the backing file and empties the library. A missing
// backing file is not an error; the library is still cleared.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			slog.Info("no library file to delete", "path", s.path)
			return nil
		}
		return fmt.Errorf("delete library file: %w", err)
	}

	return nil
}
