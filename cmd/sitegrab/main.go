package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitegrab"
	"github.com/fwojciec/sitegrab/fs"
	"github.com/fwojciec/sitegrab/goquery"
	"github.com/fwojciec/sitegrab/htmltomarkdown"
	sghttp "github.com/fwojciec/sitegrab/http"
	"github.com/fwojciec/sitegrab/readability"
	sgslog "github.com/fwojciec/sitegrab/slog"
	"github.com/fwojciec/sitegrab/trafilatura"
	"github.com/joho/godotenv"
)

// buildAPIKey is set at build time with -ldflags "-X main.buildAPIKey=...".
var buildAPIKey string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Path of the persisted API key. Set before calling Run().
	KeyPath string

	// Getenv looks up environment variables.
	Getenv func(string) string

	// BuildAPIKey is the key embedded at build time, if any.
	BuildAPIKey string

	// Scraper replaces the HTTP scraper for end-to-end testing.
	Scraper sitegrab.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		KeyPath:     fs.DefaultKeyPath(),
		Getenv:      os.Getenv,
		BuildAPIKey: buildAPIKey,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Keys:   fs.NewKeyStore(m.KeyPath),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitegrab"),
		kong.Description("Scrape web pages into clean text, images, and PDF links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitegrab --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "scrape" {
		deps.Scraper = m.Scraper
		if deps.Scraper == nil {
			deps.Scraper = m.newScraper(&cli.Scrape, deps.Keys, stderr)
		}
	}

	return kongCtx.Run(deps)
}

// newScraper wires the scraping pipeline for the scrape command.
func (m *Main) newScraper(c *ScrapeCmd, keys sitegrab.KeyStore, stderr io.Writer) sitegrab.Scraper {
	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	credentials := sitegrab.CredentialChain{
		sitegrab.StaticCredential(m.BuildAPIKey),
		sitegrab.StaticCredential(getenv(envAPIKey)),
		keys,
	}

	opts := []goquery.Option{goquery.WithConverter(htmltomarkdown.NewConverter())}
	switch c.Metadata {
	case "readability":
		opts = append(opts, goquery.WithExtractor(readability.NewExtractor()))
	case "trafilatura":
		opts = append(opts, goquery.WithExtractor(trafilatura.NewExtractor()))
	}

	var normalizer sitegrab.Normalizer = goquery.NewNormalizer(opts...)

	var logger *slog.Logger
	if c.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		normalizer = sgslog.NewLoggingNormalizer(normalizer, logger)
	}

	var scraper sitegrab.Scraper = sghttp.NewScraper(credentials, normalizer,
		sghttp.WithBaseURL(c.BaseURL),
		sghttp.WithTimeout(c.Timeout),
		sghttp.WithMode(sghttp.Mode(c.Mode)),
	)
	if logger != nil {
		scraper = sgslog.NewLoggingScraper(scraper, logger)
	}
	return scraper
}

const envAPIKey = "SITEGRAB_API_KEY"
