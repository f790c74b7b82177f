package main

import (
	"fmt"

	"github.com/fwojciec/sitegrab"
	"github.com/fwojciec/sitegrab/batch"
	"github.com/fwojciec/sitegrab/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	runner := batch.NewRunner(deps.Scraper, c.Concurrency, c.RPS)

	var progress batch.ProgressFunc
	if len(c.URLs) > 1 {
		progress = batch.ProgressWriter(deps.Stderr)
	}

	outcomes := runner.Run(deps.Ctx, c.URLs, progress)

	var exporter *fs.Exporter
	if c.Out != "" {
		exporter = fs.NewExporter(c.Out)
	}

	failed := 0
	for i, o := range outcomes {
		result := o.Result
		if o.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.URL, sitegrab.ErrorMessage(o.Err))
			if c.Format != "json" {
				continue
			}
			result = sitegrab.EmptyResult(placeholderURL(o.URL))
		}

		if exporter != nil {
			path, err := exporter.Export(deps.Ctx, result, c.exportFormat())
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", sitegrab.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
			continue
		}

		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if err := c.print(deps, result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scrapes failed", failed, len(outcomes))
	}
	return nil
}

func (c *ScrapeCmd) print(deps *Dependencies, result *sitegrab.ScrapeResult) error {
	if c.Format == "summary" || c.Format == "" {
		fmt.Fprint(deps.Stdout, sitegrab.FormatResult(result))
		return nil
	}
	data, err := fs.Render(result, fs.Format(c.Format))
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

// placeholderURL returns the URL a scrape would have recorded, or the input
// as given when it cannot be normalized.
func placeholderURL(rawURL string) string {
	if u, err := sitegrab.NormalizeURL(rawURL); err == nil {
		return u
	}
	return rawURL
}

// exportFormat maps the output format to a file format. Summaries are
// written as JSON.
func (c *ScrapeCmd) exportFormat() fs.Format {
	switch c.Format {
	case "text":
		return fs.FormatText
	case "markdown":
		return fs.FormatMarkdown
	default:
		return fs.FormatJSON
	}
}
