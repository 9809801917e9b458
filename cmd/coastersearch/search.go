package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jimmed/severus"
	"github.com/jimmed/severus/crawl"
	"github.com/jimmed/severus/rcdb"
)

// Dependencies holds the wired collaborators of a command.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Logger *slog.Logger
	Page   *severus.Page[rcdb.SearchArgs, rcdb.SearchResults]
}

// SearchCmd runs one search per query.
type SearchCmd struct {
	Queries     []string
	Concurrency int
}

// Output is the JSON record printed for each query.
type Output struct {
	Query   string         `json:"query"`
	URL     string         `json:"url"`
	Total   int            `json:"total"`
	Results []rcdb.Coaster `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// Run scrapes every query and writes the results to stdout as a JSON
// array in query order. It fails if any search failed, after printing all
// of them.
func (c *SearchCmd) Run(deps *Dependencies) error {
	args := make([]rcdb.SearchArgs, len(c.Queries))
	for i, q := range c.Queries {
		args[i] = rcdb.SearchArgs{Query: q}
	}

	runner := &crawl.Runner[rcdb.SearchArgs, rcdb.SearchResults]{
		Page:        deps.Page,
		Concurrency: c.Concurrency,
		Progress: func(e crawl.ProgressEvent) {
			switch e.Type {
			case crawl.ProgressCompleted:
				deps.Logger.Debug("search completed", "url", e.URL, "completed", e.Completed, "total", e.Total)
			case crawl.ProgressFailed:
				deps.Logger.Warn("search failed", "url", e.URL, "err", e.Error)
			}
		},
	}
	results := runner.Run(deps.Ctx, args)

	out := make([]Output, len(results))
	var failed int
	for i, r := range results {
		out[i] = Output{
			Query:   c.Queries[i],
			URL:     r.URL,
			Total:   r.Value.Total,
			Results: r.Value.Results,
		}
		if out[i].Results == nil {
			out[i].Results = []rcdb.Coaster{}
		}
		switch {
		case r.Err != nil:
			failed++
			out[i].Error = r.Err.Error()
		case !r.Found:
			deps.Logger.Warn("no results section", "query", c.Queries[i], "url", r.URL)
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(results))
	}
	return nil
}
