package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sitegrab"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper sitegrab.Scraper
	Keys    sitegrab.KeyStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape one or more URLs"`
	Key    KeyCmd    `cmd:"" help:"Manage the stored API key"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string      `arg:"" name:"url" help:"URLs to scrape"`
	Mode        string        `short:"m" enum:"structured,raw" default:"structured" help:"Extraction mode (structured, raw)"`
	Format      string        `short:"f" enum:"summary,json,text,markdown" default:"summary" help:"Output format (summary, json, text, markdown)"`
	Out         string        `short:"o" help:"Write results to files in this directory instead of stdout"`
	Metadata    string        `enum:"none,readability,trafilatura" default:"none" help:"Fallback metadata extractor for raw HTML (none, readability, trafilatura)"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent scrape limit"`
	RPS         float64       `name:"rps" default:"2" help:"Maximum scrapes per second (0 for unlimited)"`
	Timeout     time.Duration `short:"t" default:"60s" help:"Timeout per scrape"`
	BaseURL     string        `name:"base-url" env:"SITEGRAB_BASE_URL" default:"https://api.firecrawl.dev" help:"Scraping service base URL"`
	Verbose     bool          `short:"v" help:"Log requests to stderr"`
}

// KeyCmd is the "key" subcommand group.
type KeyCmd struct {
	Set   KeySetCmd   `cmd:"" help:"Store an API key"`
	Show  KeyShowCmd  `cmd:"" help:"Show the stored API key (masked)"`
	Clear KeyClearCmd `cmd:"" help:"Remove the stored API key"`
}

// KeySetCmd is the "key set" subcommand.
type KeySetCmd struct {
	Key string `arg:"" help:"API key"`
}

// KeyShowCmd is the "key show" subcommand.
type KeyShowCmd struct{}

// KeyClearCmd is the "key clear" subcommand.
type KeyClearCmd struct{}
