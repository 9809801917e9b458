package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jimmed/severus"
)

var _ severus.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher waits on a Limiter keyed by the request host before
// every fetch.
type RateLimitedFetcher struct {
	next    severus.Fetcher
	limiter Limiter
}

// NewRateLimitedFetcher creates a new RateLimitedFetcher.
func NewRateLimitedFetcher(next severus.Fetcher, limiter Limiter) *RateLimitedFetcher {
	return &RateLimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the host's rate limit and delegates to the wrapped fetcher.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", severus.Errorf(severus.EINVALID, "invalid URL %q", rawURL)
	}
	if err := f.limiter.Wait(ctx, u); err != nil {
		return "", fmt.Errorf("rate limit %s: %w", u.Host, err)
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *RateLimitedFetcher) Close() error {
	return f.next.Close()
}
