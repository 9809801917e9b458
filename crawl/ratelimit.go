package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter blocks until a request to u is allowed.
type Limiter interface {
	Wait(ctx context.Context, u *url.URL) error
}

var _ Limiter = (*DomainLimiter)(nil)

// DomainLimiter rate limits requests per host with one token bucket each.
// Hosts are compared case-insensitively and without their port, so
// https://rcdb.com and https://RCDB.com:443 share a bucket.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host, without bursts. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to the host of u is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, u *url.URL) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.bucket(hostKey(u)).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[host]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[host] = b
	}
	return b
}

func hostKey(u *url.URL) string {
	return strings.ToLower(u.Hostname())
}
