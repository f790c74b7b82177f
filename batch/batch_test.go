package batch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/sitegrab"
	"github.com/fwojciec/sitegrab/batch"
	"github.com/fwojciec/sitegrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns outcomes in input order", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				if url == "b.test" {
					time.Sleep(20 * time.Millisecond)
				}
				return sitegrab.EmptyResult("https://" + url), nil
			},
		}

		outcomes := batch.NewRunner(scraper, 3, 0).Run(context.Background(), []string{"a.test", "b.test", "c.test"}, nil)

		require.Len(t, outcomes, 3)
		assert.Equal(t, "a.test", outcomes[0].URL)
		assert.Equal(t, "https://b.test", outcomes[1].Result.URL)
		assert.Equal(t, "c.test", outcomes[2].URL)
	})

	t.Run("isolates failures", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				if url == "bad.test" {
					return nil, sitegrab.Errorf(sitegrab.ESERVICE, "failed")
				}
				return sitegrab.EmptyResult(url), nil
			},
		}

		outcomes := batch.NewRunner(scraper, 2, 0).Run(context.Background(), []string{"bad.test", "good.test"}, nil)

		require.Len(t, outcomes, 2)
		assert.Equal(t, sitegrab.ESERVICE, sitegrab.ErrorCode(outcomes[0].Err))
		assert.Nil(t, outcomes[0].Result)
		require.NoError(t, outcomes[1].Err)
		assert.NotNil(t, outcomes[1].Result)
	})

	t.Run("scrapes duplicate URLs independently", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				calls.Add(1)
				return sitegrab.EmptyResult(url), nil
			},
		}

		batch.NewRunner(scraper, 2, 0).Run(context.Background(), []string{"a.test", "a.test"}, nil)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("limits concurrency", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return sitegrab.EmptyResult(url), nil
			},
		}

		urls := []string{"1", "2", "3", "4", "5", "6"}
		batch.NewRunner(scraper, 2, 0).Run(context.Background(), urls, nil)

		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("paces requests", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				return sitegrab.EmptyResult(url), nil
			},
		}

		start := time.Now()
		batch.NewRunner(scraper, 3, 10).Run(context.Background(), []string{"a", "b", "c"}, nil)

		// 10 req/sec with burst 1: the third request waits ~200ms.
		assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	})

	t.Run("reports progress for every URL", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				return nil, errors.New("boom")
			},
		}

		var mu sync.Mutex
		var completed []int
		progress := func(done, total int, o batch.Outcome) {
			mu.Lock()
			defer mu.Unlock()
			completed = append(completed, done)
			assert.Equal(t, 3, total)
			assert.Error(t, o.Err)
		}

		batch.NewRunner(scraper, 3, 0).Run(context.Background(), []string{"a", "b", "c"}, progress)

		assert.ElementsMatch(t, []int{1, 2, 3}, completed)
	})

	t.Run("returns context error when canceled before pacing allows", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*sitegrab.ScrapeResult, error) {
				calls.Add(1)
				return sitegrab.EmptyResult(url), nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcomes := batch.NewRunner(scraper, 1, 1).Run(ctx, []string{"a", "b"}, nil)

		require.Len(t, outcomes, 2)
		for _, o := range outcomes {
			assert.Error(t, o.Err)
		}
		assert.Equal(t, int32(0), calls.Load())
	})
}
