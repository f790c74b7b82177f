// Package batch scrapes several independent URLs with bounded concurrency,
// pacing calls to the scraping service.
package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/sitegrab"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of scrapes in flight when unset.
const DefaultConcurrency = 3

// Outcome is the result of scraping one URL. Exactly one of Result and Err is set.
type Outcome struct {
	URL    string
	Result *sitegrab.ScrapeResult
	Err    error
}

// ProgressFunc is called once per URL as scrapes finish.
// Calls are serialized.
type ProgressFunc func(completed, total int, o Outcome)

// Runner scrapes a list of URLs. Each URL is a separate, single-attempt
// scrape; one failure does not affect the others.
type Runner struct {
	scraper     sitegrab.Scraper
	limiter     *rate.Limiter
	concurrency int
}

// NewRunner creates a Runner that issues at most rps scrapes per second with
// at most concurrency in flight. rps <= 0 disables pacing.
func NewRunner(scraper sitegrab.Scraper, concurrency int, rps float64) *Runner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Runner{
		scraper:     scraper,
		limiter:     rate.NewLimiter(limit, 1),
		concurrency: concurrency,
	}
}

// Run scrapes urls and returns one outcome per URL in input order.
// Duplicate URLs are scraped once per occurrence.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) []Outcome {
	outcomes := make([]Outcome, len(urls))

	var mu sync.Mutex
	completed := 0

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			o := Outcome{URL: u}
			if err := r.limiter.Wait(ctx); err != nil {
				o.Err = err
			} else {
				o.Result, o.Err = r.scraper.Scrape(ctx, u)
			}
			outcomes[i] = o

			if progress != nil {
				mu.Lock()
				completed++
				progress(completed, len(urls), o)
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}
