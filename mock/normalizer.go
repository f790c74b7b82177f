package mock

import "github.com/fwojciec/sitegrab"

var _ sitegrab.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of sitegrab.Normalizer.
type Normalizer struct {
	NormalizeFn func(payload sitegrab.Payload, originURL string) (*sitegrab.ScrapeResult, error)
}

func (n *Normalizer) Normalize(payload sitegrab.Payload, originURL string) (*sitegrab.ScrapeResult, error) {
	return n.NormalizeFn(payload, originURL)
}
