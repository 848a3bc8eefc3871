// Package content defines the content library data model: a processed
// article together with its generated platform posts and schedules.
package content

import "time"

// ScheduledPost is a single deferred publication of one platform post.
type ScheduledPost struct {
	Platform      string    `json:"platform"`
	Content       string    `json:"content"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Posted        bool      `json:"posted"`
}

// Content holds everything generated from one processed URL.
type Content struct {
	URL            string            `json:"url"`
	Title          string            `json:"title"`
	Summary        string            `json:"summary"`
	PlatformPosts  map[string]string `json:"platform_posts"`
	Keywords       []string          `json:"keywords"`
	Language       string            `json:"language"`
	ScheduledPosts []*ScheduledPost  `json:"scheduled_posts"`
	Posted         bool              `json:"posted"`
}

// AllPosted reports whether every scheduled post has been published.
// A record with no scheduled posts is not considered posted.
func (c *Content) AllPosted() bool {
	if len(c.ScheduledPosts) == 0 {
		return false
	}
	for _, sp := range c.ScheduledPosts {
		if !sp.Posted {
			return false
		}
	}
	return true
}

// RefreshPosted recomputes the aggregate posted flag from the scheduled posts.
func (c *Content) RefreshPosted() {
	c.Posted = c.AllPosted()
}

// Summarize truncates text to a preview of at most maxRunes runes,
// appending an ellipsis when truncated.
func Summarize(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "..."
}
