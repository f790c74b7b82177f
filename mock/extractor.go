package mock

import "github.com/fwojciec/sitegrab"

var _ sitegrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitegrab.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitegrab.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitegrab.ExtractResult, error) {
	return e.ExtractFn(html)
}
