// Package trafilatura extracts page metadata with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitegrab"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitegrab.Extractor at compile time.
var _ sitegrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract metadata and main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page metadata and main content.
func (e *Extractor) Extract(rawHTML string) (*sitegrab.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EPARSE, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &sitegrab.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
		ContentHTML: contentHTML,
	}, nil
}
