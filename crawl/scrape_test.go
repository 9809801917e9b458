package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jimmed/severus"
	"github.com/jimmed/severus/crawl"
	"github.com/jimmed/severus/goquery"
	"github.com/jimmed/severus/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type query struct {
	Term  string
	Delay time.Duration
}

func queryURL(q query) string {
	return "https://example.com/search?q=" + url.QueryEscape(q.Term)
}

func newQueryPage(t *testing.T, fetcher severus.Fetcher) *severus.Page[query, string] {
	t.Helper()
	page, err := severus.NewPage[query](queryURL, severus.Text("h1"), fetcher, goquery.NewParser())
	require.NoError(t, err)
	return page
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns results in argument order", func(t *testing.T) {
		t.Parallel()

		args := []query{
			{Term: "a", Delay: 30 * time.Millisecond},
			{Term: "b", Delay: 0},
			{Term: "c", Delay: 15 * time.Millisecond},
		}
		delays := make(map[string]time.Duration)
		for _, a := range args {
			delays[queryURL(a)] = a.Delay
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u string) (string, error) {
				time.Sleep(delays[u])
				parsed, _ := url.Parse(u)
				return fmt.Sprintf("<h1>%s</h1>", parsed.Query().Get("q")), nil
			},
		}

		r := &crawl.Runner[query, string]{Page: newQueryPage(t, fetcher), Concurrency: 3}
		results := r.Run(context.Background(), args)

		require.Len(t, results, 3)
		for i, want := range []string{"a", "b", "c"} {
			require.NoError(t, results[i].Err)
			assert.True(t, results[i].Found)
			assert.Equal(t, want, results[i].Value)
			assert.Equal(t, queryURL(args[i]), results[i].URL)
		}
	})

	t.Run("records failures without stopping other scrapes", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u string) (string, error) {
				if u == queryURL(query{Term: "bad"}) {
					return "", fetchErr
				}
				return "<p>no heading</p>", nil
			},
		}

		r := &crawl.Runner[query, string]{Page: newQueryPage(t, fetcher)}
		results := r.Run(context.Background(), []query{{Term: "bad"}, {Term: "good"}})

		require.Len(t, results, 2)
		assert.ErrorIs(t, results[0].Err, fetchErr)
		require.NoError(t, results[1].Err)
		assert.False(t, results[1].Found)
	})

	t.Run("bounds concurrent scrapes", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u string) (string, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return "<h1>ok</h1>", nil
			},
		}

		args := make([]query, 8)
		for i := range args {
			args[i] = query{Term: fmt.Sprint(i)}
		}
		r := &crawl.Runner[query, string]{Page: newQueryPage(t, fetcher), Concurrency: 2}
		results := r.Run(context.Background(), args)

		require.Len(t, results, 8)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u string) (string, error) {
				if u == queryURL(query{Term: "bad"}) {
					return "", errors.New("boom")
				}
				return "<h1>ok</h1>", nil
			},
		}

		var events []crawl.ProgressEvent
		r := &crawl.Runner[query, string]{
			Page:     newQueryPage(t, fetcher),
			Progress: func(e crawl.ProgressEvent) { events = append(events, e) },
		}
		r.Run(context.Background(), []query{{Term: "ok"}, {Term: "bad"}})

		require.Len(t, events, 4)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		types := []crawl.ProgressType{events[1].Type, events[2].Type}
		assert.ElementsMatch(t, []crawl.ProgressType{crawl.ProgressCompleted, crawl.ProgressFailed}, types)
		assert.Equal(t, crawl.ProgressFinished, events[3].Type)
		assert.Equal(t, 2, events[3].Completed)
	})

	t.Run("handles no arguments", func(t *testing.T) {
		t.Parallel()

		r := &crawl.Runner[query, string]{Page: newQueryPage(t, &mock.Fetcher{})}
		results := r.Run(context.Background(), nil)

		assert.Empty(t, results)
	})
}

func TestScrapeAll(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, u string) (string, error) {
			return "<h1>Steel Vengeance</h1>", nil
		},
	}

	results := crawl.ScrapeAll(context.Background(), newQueryPage(t, fetcher), []query{{Term: "steel"}}, 1)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "Steel Vengeance", results[0].Value)
}
