package severus

import "context"

// Fetcher retrieves raw document text from URLs.
type Fetcher interface {
	// Fetch returns the body found at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
