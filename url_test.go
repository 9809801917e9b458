package severus_test

import (
	"net/url"
	"testing"

	"github.com/jimmed/severus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://test/path"

func mockURL() *url.URL {
	return &url.URL{Scheme: "https", Host: "test", Path: "path"}
}

type searchArgs struct {
	Query string
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	resolve := severus.Literal[searchArgs](testURL)

	assert.Equal(t, testURL, resolve(searchArgs{}))
	assert.Equal(t, testURL, resolve(searchArgs{Query: "ignored"}))
}

func TestStructured(t *testing.T) {
	t.Parallel()

	t.Run("formats the URL", func(t *testing.T) {
		t.Parallel()

		resolve := severus.Structured[searchArgs](mockURL())

		assert.Equal(t, testURL, resolve(searchArgs{}))
	})

	t.Run("formats once at construction", func(t *testing.T) {
		t.Parallel()

		u := mockURL()
		resolve := severus.Structured[searchArgs](u)
		u.Path = "/changed"

		assert.Equal(t, testURL, resolve(searchArgs{}))
	})

	t.Run("encodes query parameters", func(t *testing.T) {
		t.Parallel()

		u := &url.URL{
			Scheme:   "https",
			Host:     "rcdb.com",
			Path:     "/r.htm",
			RawQuery: url.Values{"ot": {"2"}, "na": {"Big One"}}.Encode(),
		}

		resolve := severus.Structured[searchArgs](u)

		assert.Equal(t, "https://rcdb.com/r.htm?na=Big+One&ot=2", resolve(searchArgs{}))
	})
}

func TestDynamic(t *testing.T) {
	t.Parallel()

	t.Run("calls fn with the exact arguments", func(t *testing.T) {
		t.Parallel()

		var got []searchArgs
		resolve := severus.Dynamic(func(args searchArgs) string {
			got = append(got, args)
			return testURL
		})

		assert.Equal(t, testURL, resolve(searchArgs{Query: "Nemesis"}))
		assert.Equal(t, []searchArgs{{Query: "Nemesis"}}, got)
	})

	t.Run("formats structured results", func(t *testing.T) {
		t.Parallel()

		calls := 0
		resolve := severus.DynamicStructured(func(args searchArgs) *url.URL {
			calls++
			u := mockURL()
			u.RawQuery = url.Values{"q": {args.Query}}.Encode()
			return u
		})

		assert.Equal(t, testURL+"?q=Nemesis", resolve(searchArgs{Query: "Nemesis"}))
		assert.Equal(t, testURL+"?q=Oblivion", resolve(searchArgs{Query: "Oblivion"}))
		assert.Equal(t, 2, calls)
	})
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name string
		src any
	}{
		{name: "string", src: testURL},
		{name: "url value", src: *mockURL()},
		{name: "url pointer", src: mockURL()},
		{name: "resolver", src: severus.Literal[searchArgs](testURL)},
		{name: "string function", src: func(searchArgs) string { return testURL }},
		{name: "url pointer function", src: func(searchArgs) *url.URL { return mockURL() }},
		{name: "url value function", src: func(searchArgs) url.URL { return *mockURL() }},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolve, err := severus.NewResolver[searchArgs](tt.src)

			require.NoError(t, err)
			assert.Equal(t, testURL, resolve(searchArgs{Query: "anything"}))
		})
	}

	t.Run("passes arguments to function specs", func(t *testing.T) {
		t.Parallel()

		resolve, err := severus.NewResolver[searchArgs](func(args searchArgs) string {
			return "https://rcdb.com/r.htm?na=" + url.QueryEscape(args.Query)
		})

		require.NoError(t, err)
		assert.Equal(t, "https://rcdb.com/r.htm?na=Top+Thrill", resolve(searchArgs{Query: "Top Thrill"}))
	})

	invalid := []struct {
		name string
		src any
	}{
		{name: "nil", src: nil},
		{name: "number", src: 42},
		{name: "nil url pointer", src: (*url.URL)(nil)},
		{name: "nil function", src: (func(searchArgs) string)(nil)},
		{name: "function of other arguments", src: func(int) string { return testURL }},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			resolve, err := severus.NewResolver[searchArgs](tt.src)

			require.Error(t, err)
			assert.Nil(t, resolve)
			assert.Equal(t, severus.ECONFIG, severus.ErrorCode(err))
		})
	}
}
