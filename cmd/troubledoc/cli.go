package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/troubledoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  troubledoc.Catalog
	Fetcher  troubledoc.Fetcher
	Parser   troubledoc.Parser
	Searcher troubledoc.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log fetch and parse activity at debug level"`
	Render  bool          `help:"Fetch pages with headless Chrome instead of plain HTTP"`
	Retry   bool          `help:"Retry failed fetches with backoff"`
	Timeout time.Duration `short:"t" default:"10s" env:"TROUBLEDOC_TIMEOUT" help:"Fetch timeout per page"`

	Search   SearchCmd   `cmd:"" help:"Search troubleshooting documentation"`
	Show     ShowCmd     `cmd:"" help:"Fetch and display a single documentation page"`
	Services ServicesCmd `cmd:"" help:"List services with known documentation pages"`
	Serve    ServeCmd    `cmd:"" help:"Serve the search API over HTTP"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string `arg:"" help:"Text matched against page titles, descriptions and keywords"`
	Service     string `short:"s" help:"Limit the search to one service (e.g. iam, s3)"`
	Category    string `help:"Limit results to one issue category" enum:",access-denied,permissions,authentication,configuration,general" default:""`
	Provider    string `default:"aws" help:"Cloud provider"`
	MaxResults  int    `short:"n" name:"max-results" default:"10" help:"Maximum number of results"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit per service"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL string `arg:"" help:"Documentation page URL"`
}

// ServicesCmd is the "services" subcommand.
type ServicesCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string `default:":8080" env:"TROUBLEDOC_ADDR" help:"Listen address"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit per service"`
}
