package severus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jimmed/severus"
	"github.com/jimmed/severus/goquery"
	"github.com/jimmed/severus/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Title string
	Items []string
}

func listingExtractor() severus.Extractor[listing] {
	return severus.Section("body",
		severus.Set("title", severus.Text("h1"), func(l *listing, v string) { l.Title = v }),
		severus.Set("items", severus.List("ul li", severus.Text(severus.Self)), func(l *listing, v []string) { l.Items = v }),
	)
}

func staticFetcher(body string, urls *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			*urls = append(*urls, url)
			return body, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{}
	parser := goquery.NewParser()

	t.Run("rejects invalid URL specs", func(t *testing.T) {
		t.Parallel()

		_, err := severus.NewPage[searchArgs](42, listingExtractor(), fetcher, parser)

		assert.Equal(t, severus.ECONFIG, severus.ErrorCode(err))
	})

	t.Run("requires an extractor", func(t *testing.T) {
		t.Parallel()

		_, err := severus.NewPage[searchArgs, listing](testURL, nil, fetcher, parser)

		assert.Equal(t, severus.ECONFIG, severus.ErrorCode(err))
	})

	t.Run("requires a fetcher", func(t *testing.T) {
		t.Parallel()

		_, err := severus.NewPage[searchArgs](testURL, listingExtractor(), nil, parser)

		assert.Equal(t, severus.ECONFIG, severus.ErrorCode(err))
	})

	t.Run("requires a parser", func(t *testing.T) {
		t.Parallel()

		_, err := severus.NewPage[searchArgs](testURL, listingExtractor(), fetcher, nil)

		assert.Equal(t, severus.ECONFIG, severus.ErrorCode(err))
	})
}

func TestPage_URL(t *testing.T) {
	t.Parallel()

	page, err := severus.NewPage[searchArgs](func(args searchArgs) string {
		return "https://example.com/search?q=" + args.Query
	}, listingExtractor(), &mock.Fetcher{}, goquery.NewParser())
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/search?q=go", page.URL(searchArgs{Query: "go"}))
}

func TestPage_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("fetches, parses and extracts", func(t *testing.T) {
		t.Parallel()

		var urls []string
		page, err := severus.NewPage[searchArgs](testURL, listingExtractor(), staticFetcher(testHTML, &urls), goquery.NewParser())
		require.NoError(t, err)

		v, ok, err := page.Scrape(context.Background(), searchArgs{})

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, listing{Title: "Test", Items: []string{"Foo", "Bar", "Baz"}}, v)
		assert.Equal(t, []string{testURL}, urls)
	})

	t.Run("reports absence when the root selector fails", func(t *testing.T) {
		t.Parallel()

		var urls []string
		page, err := severus.NewPage[searchArgs](testURL, severus.Section("main",
			severus.Set("title", severus.Text("h1"), func(l *listing, v string) { l.Title = v }),
		), staticFetcher(testHTML, &urls), goquery.NewParser())
		require.NoError(t, err)

		_, ok, err := page.Scrape(context.Background(), searchArgs{})

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("propagates fetch errors unchanged", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fetchErr
			},
		}
		parser := &mock.Parser{
			ParseFn: func(text string) (severus.Node, error) {
				t.Fatal("parser must not be called")
				return nil, nil
			},
		}
		page, err := severus.NewPage[searchArgs](testURL, listingExtractor(), fetcher, parser)
		require.NoError(t, err)

		_, ok, err := page.Scrape(context.Background(), searchArgs{})

		assert.ErrorIs(t, err, fetchErr)
		assert.False(t, ok)
	})

	t.Run("wraps parse errors", func(t *testing.T) {
		t.Parallel()

		var urls []string
		parser := &mock.Parser{
			ParseFn: func(text string) (severus.Node, error) {
				return nil, severus.Errorf(severus.EINVALID, "failed to parse HTML")
			},
		}
		page, err := severus.NewPage[searchArgs](testURL, listingExtractor(), staticFetcher("<html>", &urls), parser)
		require.NoError(t, err)

		_, _, err = page.Scrape(context.Background(), searchArgs{})

		require.Error(t, err)
		assert.Equal(t, severus.EINVALID, severus.ErrorCode(err))
		assert.Contains(t, err.Error(), testURL)
	})
}

func TestPage_Resolve(t *testing.T) {
	t.Parallel()

	page, err := severus.NewPage[searchArgs](testURL, listingExtractor(), &mock.Fetcher{}, goquery.NewParser())
	require.NoError(t, err)

	v, ok := page.Resolve(goquery.MustParse(testHTML))

	require.True(t, ok)
	assert.Equal(t, "Test", v.Title)
}
