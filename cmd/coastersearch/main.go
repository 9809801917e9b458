package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/jimmed/severus"
	"github.com/jimmed/severus/crawl"
	"github.com/jimmed/severus/goquery"
	sevhttp "github.com/jimmed/severus/http"
	"github.com/jimmed/severus/rcdb"
	"github.com/jimmed/severus/rod"
	sevslog "github.com/jimmed/severus/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher selected by flags.
	Fetcher severus.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Browser     bool          `short:"b" help:"Render pages in a headless browser"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent search limit"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per host (0 disables limiting)"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for static fetches"`
	Verbose     bool          `short:"v" help:"Log absent fields and progress"`
	Queries     []string      `arg:"" name:"query" help:"Coaster names to search for"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coastersearch"),
		kong.Description("Search the Roller Coaster DataBase and print results as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	base, err := m.fetcher(cli)
	if err != nil {
		return err
	}
	defer base.Close()

	var fetcher severus.Fetcher = sevslog.NewLoggingFetcher(base, logger)
	fetcher = crawl.NewRateLimitedFetcher(fetcher, crawl.NewDomainLimiter(cli.RPS))

	obs := sevslog.NewObserver(logger.With("page", "search"))
	page, err := rcdb.NewSearchPage(fetcher, goquery.NewParser(), rcdb.WithObserver(obs))
	if err != nil {
		return err
	}

	cmd := &SearchCmd{
		Queries:     cli.Queries,
		Concurrency: cli.Concurrency,
	}
	return cmd.Run(&Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Logger: logger,
		Page:   page,
	})
}

func (m *Main) fetcher(cli *CLI) (severus.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout), rod.WithWaitSelector("main section"))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}
	opts := []sevhttp.Option{sevhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, sevhttp.WithUserAgent(cli.UserAgent))
	}
	return sevhttp.NewFetcher(opts...), nil
}
