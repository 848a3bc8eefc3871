// Package publisher delivers scheduled posts to their platforms and
// records the outcome in the content library.
package publisher

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Publisher is the interface for delivering a post to a platform.
type Publisher interface {
	// Publish delivers text to the named platform.
	Publish(ctx context.Context, platform, text string) error
}

// Console is a Publisher that prints posts. It stands in for real
// platform API clients.
type Console struct {
	// Out receives the output. Defaults to stdout.
	Out io.Writer
}

// Publish prints the post.
func (c Console) Publish(ctx context.Context, platform, text string) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "Publishing to %s:\n%s\n", strings.ToUpper(platform), text)
	return err
}
