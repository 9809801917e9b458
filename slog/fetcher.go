// Package slog provides log/slog based observers and decorators for
// severus interfaces. Extractors never log on their own; logging is wired
// in from here.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jimmed/severus"
)

// Ensure LoggingFetcher implements severus.Fetcher.
var _ severus.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging of every fetch.
type LoggingFetcher struct {
	next   severus.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next severus.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL, body size, body hash and duration of the fetch and
// delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Info("fetch", append(attrs, "err", err)...)
			return
		}
		f.logger.Info("fetch", append(attrs, "hash", hash(body))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// hash identifies a body in logs so repeated fetches of unchanged pages can
// be spotted.
func hash(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}
