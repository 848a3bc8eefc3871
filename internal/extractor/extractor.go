// Package extractor fetches a web article and pulls out its title and
// body text. The scrape is shallow: paragraph text from the first of
// article, main, or body.
package extractor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultTimeout = 30 * time.Second

// Extracted holds the scraped article fields.
type Extracted struct {
	Title string
	Text  string
}

// Extractor fetches and parses article pages.
type Extractor struct {
	client *http.Client
}

// Config holds extractor configuration.
type Config struct {
	// Timeout bounds the whole fetch. Defaults to 30s.
	Timeout time.Duration
}

// New creates an extractor.
func New(cfg Config) *Extractor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Extractor{
		client: &http.Client{Timeout: timeout},
	}
}

// Extract fetches url and scrapes its title and paragraph text.
func (e *Extractor) Extract(ctx context.Context, url string) (Extracted, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Extracted{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return Extracted{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Extracted{}, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Extracted{}, fmt.Errorf("parse %s: %w", url, err)
	}

	return Extracted{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  articleText(doc),
	}, nil
}

// articleText joins the paragraph texts of the most specific content
// container present: article, then main, then body.
func articleText(doc *goquery.Document) string {
	var container *goquery.Selection
	for _, sel := range []string{"article", "main", "body"} {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			container = s
			break
		}
	}
	if container == nil {
		return ""
	}

	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}
