package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oanahulpoi/social-media-ai/internal/content"
)

// PlatformPosts generates one post per supported platform in the given
// language. A platform whose generation fails yields an empty string;
// the other platforms are unaffected.
func (c *Client) PlatformPosts(ctx context.Context, text, title, language string) (map[string]string, error) {
	languageName, err := content.LanguageName(language)
	if err != nil {
		return nil, err
	}

	posts := make(map[string]string, len(content.Platforms()))
	for _, platform := range content.Platforms() {
		spec, err := content.SpecFor(platform)
		if err != nil {
			return nil, err
		}

		name := content.DisplayName(platform)
		system := fmt.Sprintf(postSystemPrompt, languageName)
		prompt := fmt.Sprintf(postPrompt,
			name, languageName, title, text,
			languageName, spec.MaxLength, spec.HashtagLimit, languageName,
			languageName, name, languageName, languageName)

		post, err := c.Complete(ctx, system, prompt, postTemperature)
		if err != nil {
			slog.Error("post generation failed", "platform", platform, "error", err)
			posts[platform] = ""
			continue
		}
		posts[platform] = strings.TrimSpace(post)
	}

	return posts, nil
}

// Keywords extracts 5-7 keywords from the text.
func (c *Client) Keywords(ctx context.Context, text string) ([]string, error) {
	response, err := c.Complete(ctx, keywordSystemPrompt, fmt.Sprintf(keywordPrompt, text), keywordTemperature)
	if err != nil {
		return nil, fmt.Errorf("extract keywords: %w", err)
	}

	return ParseKeywords(response), nil
}

// ParseKeywords splits a comma-separated model response into trimmed,
// non-empty keywords.
func ParseKeywords(response string) []string {
	var keywords []string
	for _, k := range strings.Split(response, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
