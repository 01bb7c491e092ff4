package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/troubledoc"
	"github.com/fwojciec/troubledoc/gocache"
	"github.com/fwojciec/troubledoc/goquery"
	troubledochttp "github.com/fwojciec/troubledoc/http"
	troubledocprom "github.com/fwojciec/troubledoc/prometheus"
	"github.com/fwojciec/troubledoc/rod"
	"github.com/fwojciec/troubledoc/search"
	troubledocslog "github.com/fwojciec/troubledoc/slog"
	"github.com/lmittmann/tint"
	"github.com/subosito/gotenv"
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
	// Catalog of candidate documentation pages. Set before calling Run().
	Catalog troubledoc.Catalog

	// Fetcher for end-to-end testing. When set it replaces the HTTP or
	// browser fetcher Run would otherwise construct.
	Fetcher troubledoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Catalog: troubledoc.DefaultCatalog(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Environment files are optional.
	_ = gotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Catalog: m.Catalog,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("troubledoc"),
		kong.Description("Search AWS troubleshooting documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'troubledoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the command, so take the command name from
	// the parse result rather than args[0].
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	// Wire fetch-dependent services based on command
	if cmd == "search" || cmd == "show" || cmd == "serve" {
		fetcher, err := m.newFetcher(cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Fetcher = troubledocslog.NewLoggingFetcher(
			troubledocprom.NewMetricsFetcher(fetcher), deps.Logger)
		deps.Parser = troubledocslog.NewLoggingParser(
			troubledocprom.NewMetricsParser(goquery.NewParser()), deps.Logger)
	}

	if cmd == "search" || cmd == "serve" {
		concurrency := cli.Search.Concurrency
		if cmd == "serve" {
			concurrency = cli.Serve.Concurrency
		}

		// Rate limit requests per documentation host (2 per second)
		rateLimiter := search.NewDomainLimiter(2.0)

		deps.Searcher = troubledocslog.NewLoggingSearcher(
			troubledocprom.NewMetricsSearcher(&search.Searcher{
				Fetcher:     deps.Fetcher,
				Parser:      deps.Parser,
				Cache:       troubledocprom.NewMetricsCache(gocache.NewCache()),
				Catalog:     m.Catalog,
				RateLimiter: rateLimiter,
				Concurrency: concurrency,
			}), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher constructs the page fetcher: plain HTTP by default, headless
// Chrome when --render is set.
func (m *Main) newFetcher(cli *CLI) (troubledoc.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cli.Render {
		return rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	}

	opts := []troubledochttp.Option{troubledochttp.WithTimeout(cli.Timeout)}
	if ua := os.Getenv("TROUBLEDOC_USER_AGENT"); ua != "" {
		opts = append(opts, troubledochttp.WithUserAgent(ua))
	}
	if cli.Retry {
		opts = append(opts, troubledochttp.WithRetryDelays(troubledochttp.DefaultRetryDelays()))
	}
	return troubledochttp.NewFetcher(opts...), nil
}

// newLogger builds the CLI logger. Logs go to stderr so command output on
// stdout stays clean.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
