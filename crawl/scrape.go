// Package crawl runs page definitions over many inputs. It rate limits
// fetches per host and bounds how many scrapes run at once.
package crawl

import (
	"context"

	"github.com/jimmed/severus"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of concurrent scrapes used when a
// Runner does not set one.
const DefaultConcurrency = 10

// Result holds the outcome of scraping a page for one set of arguments.
type Result[R any] struct {
	URL   string
	Value R
	// Found is false when the root extractor found nothing.
	Found bool
	Err   error
}

// ProgressEvent reports progress while a Runner works through its inputs.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress. It is always called
// from the goroutine that called Run.
type ProgressFunc func(event ProgressEvent)

// Runner scrapes a page for many independent sets of arguments.
type Runner[A, R any] struct {
	Page        *severus.Page[A, R]
	Concurrency int
	Progress    ProgressFunc
}

type indexed[R any] struct {
	position int
	result   Result[R]
}

// Run scrapes the page once per element of args and returns the results in
// the order of args. A failed scrape is reported in its Result and does not
// stop the others.
func (r *Runner[A, R]) Run(ctx context.Context, args []A) []Result[R] {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(args)
	r.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan indexed[R], total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, a := range args {
			g.Go(func() error {
				v, found, err := r.Page.Scrape(gctx, a)
				resultCh <- indexed[R]{
					position: i,
					result:   Result[R]{URL: r.Page.URL(a), Value: v, Found: found, Err: err},
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result[R], total)
	completed := 0
	for res := range resultCh {
		completed++
		results[res.position] = res.result
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       res.result.URL,
		}
		if res.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = res.result.Err
		}
		r.notify(event)
	}

	r.notify(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	return results
}

func (r *Runner[A, R]) notify(event ProgressEvent) {
	if r.Progress != nil {
		r.Progress(event)
	}
}

// ScrapeAll runs page over args with at most concurrency scrapes in flight.
func ScrapeAll[A, R any](ctx context.Context, page *severus.Page[A, R], args []A, concurrency int) []Result[R] {
	r := &Runner[A, R]{Page: page, Concurrency: concurrency}
	return r.Run(ctx, args)
}
