// Package readability extracts page metadata with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/sitegrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitegrab.Extractor at compile time.
var _ sitegrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the title, excerpt and main
// content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page metadata and main content.
// The excerpt is used as the description.
func (e *Extractor) Extract(rawHTML string) (*sitegrab.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EPARSE, "readability: %v", err)
	}

	return &sitegrab.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
		ContentHTML: article.Content,
	}, nil
}
