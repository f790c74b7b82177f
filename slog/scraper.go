// Package slog provides logging decorators for sitegrab services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegrab"
)

// Ensure LoggingScraper implements sitegrab.Scraper.
var _ sitegrab.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   sitegrab.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next sitegrab.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result *sitegrab.ScrapeResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("scrape",
				"url", url,
				"code", sitegrab.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("scrape",
			"url", result.URL,
			"text", len(result.Text),
			"images", len(result.Images),
			"pdfs", len(result.PDFs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
