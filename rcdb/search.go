// Package rcdb defines pages of the Roller Coaster DataBase (rcdb.com).
package rcdb

import (
	"errors"
	"math"
	"net/url"
	"path"
	"time"

	"github.com/jimmed/severus"
)

// SearchArgs are the arguments of a coaster search.
type SearchArgs struct {
	Query string
}

// Coaster is one row of the search report.
type Coaster struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Opened    time.Time `json:"opened,omitzero"`
	HasPhotos bool      `json:"hasPhotos"`
	ParkID    string    `json:"parkId"`
	Park      string    `json:"park"`
	TypeID    string    `json:"typeId"`
	Type      string    `json:"type"`
	DesignID  string    `json:"designId"`
	Design    string    `json:"design"`
	StatusID  string    `json:"statusId"`
	Status    string    `json:"status"`
}

// SearchResults is a page of coaster search results.
type SearchResults struct {
	Total   int       `json:"total"`
	Results []Coaster `json:"results"`
}

// SearchURL returns the search report URL for args.
func SearchURL(args SearchArgs) *url.URL {
	return &url.URL{
		Scheme:   "https",
		Host:     "rcdb.com",
		Path:     "/r.htm",
		RawQuery: url.Values{"ot": {"2"}, "na": {args.Query}}.Encode(),
	}
}

// Option configures the search page.
type Option func(*options)

type options struct {
	observer severus.Observer
}

// WithObserver reports every field of the results and of each coaster row
// that the page does not provide.
func WithObserver(obs severus.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// NewSearchPage creates the coaster search page.
func NewSearchPage(fetcher severus.Fetcher, parser severus.Parser, opts ...Option) (*severus.Page[SearchArgs, SearchResults], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return severus.NewPage[SearchArgs](severus.DynamicStructured(SearchURL), SearchExtractor(o.observer), fetcher, parser)
}

// SearchExtractor returns the root extractor of the search page. obs may be
// nil.
func SearchExtractor(obs severus.Observer) severus.Extractor[SearchResults] {
	return severus.Section[SearchResults]("main section", watch(obs,
		severus.Set("total", count(".t-top tbody tr:nth-child(1) td:nth-child(3)"),
			func(r *SearchResults, v int) { r.Total = v }),
		severus.Set("results", severus.List("#report tbody tr", coasterRow(obs)),
			func(r *SearchResults, v []Coaster) { r.Results = v }),
	)...)
}

func coasterRow(obs severus.Observer) severus.Extractor[Coaster] {
	return severus.Tuple("td",
		watch(obs,
			severus.Set("hasPhotos", severus.Exists("a"), func(c *Coaster, v bool) { c.HasPhotos = v }),
		),
		watch(obs,
			severus.Set("id", idFromPath("a"), func(c *Coaster, v string) { c.ID = v }),
			severus.Set("name", severus.Text("a"), func(c *Coaster, v string) { c.Name = v }),
		),
		watch(obs,
			severus.Set("parkId", idFromPath("a"), func(c *Coaster, v string) { c.ParkID = v }),
			severus.Set("park", severus.Text("a"), func(c *Coaster, v string) { c.Park = v }),
		),
		watch(obs,
			severus.Set("typeId", idFromQuery("a"), func(c *Coaster, v string) { c.TypeID = v }),
			severus.Set("type", severus.Text("a"), func(c *Coaster, v string) { c.Type = v }),
		),
		watch(obs,
			severus.Set("designId", idFromQuery("a"), func(c *Coaster, v string) { c.DesignID = v }),
			severus.Set("design", severus.Text("a"), func(c *Coaster, v string) { c.Design = v }),
		),
		watch(obs,
			severus.Set("statusId", idFromQuery("a"), func(c *Coaster, v string) { c.StatusID = v }),
			severus.Set("status", severus.Text("a"), func(c *Coaster, v string) { c.Status = v }),
		),
		watch(obs,
			severus.Set("opened", date("time"), func(c *Coaster, v time.Time) { c.Opened = v }),
		),
	)
}

func watch[R any](obs severus.Observer, fields ...severus.Field[R]) severus.Column[R] {
	if obs == nil {
		return fields
	}
	return severus.Watch(obs, fields...)
}

// count reads an integer cell. Unparsable text is Absent.
func count(selector string) severus.Extractor[int] {
	return severus.TryMap(severus.Int(selector), func(f float64) (int, error) {
		if math.IsNaN(f) {
			return 0, errNotANumber
		}
		return int(f), nil
	})
}

var errNotANumber = errors.New("not a number")

// idFromPath extracts the last path segment of a link, e.g. "/10339.htm"
// yields "10339.htm".
func idFromPath(selector string) severus.Extractor[string] {
	return severus.Map(severus.URL(selector), func(u *url.URL) string {
		return path.Base(u.Path)
	})
}

// idFromQuery extracts the id query parameter of a link.
func idFromQuery(selector string) severus.Extractor[string] {
	return severus.TryMap(severus.URL(selector), func(u *url.URL) (string, error) {
		id := u.Query().Get("id")
		if id == "" {
			return "", errors.New("no id parameter")
		}
		return id, nil
	})
}

// dateLayouts are the precisions rcdb uses in datetime attributes.
var dateLayouts = []string{time.DateOnly, "2006-01", "2006"}

func date(selector string) severus.Extractor[time.Time] {
	return severus.TryMap(severus.Attr(selector, "datetime"), parseDate)
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
