package mock

import (
	"context"

	"github.com/fwojciec/sitegrab"
)

var _ sitegrab.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of sitegrab.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}
