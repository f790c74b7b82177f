package sitegrab

import (
	"encoding/json"
	"strings"
	"time"
)

// Placeholders used when a page does not provide a value.
const (
	DefaultTitle       = "Untitled Page"
	DefaultDescription = "No description available"
	DefaultImageAlt    = "Image"
	DefaultPDFTitle    = "PDF Document"
)

// Image is an image referenced by a scraped page.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// PDF is a link to a PDF document found on a scraped page.
type PDF struct {
	Href  string `json:"href"`
	Title string `json:"title"`
}

// ScrapeResult holds the normalized content of a single scraped page.
// It is built fresh for every scrape and is not modified after being returned.
type ScrapeResult struct {
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Text        []string  `json:"text"`
	Images      []Image   `json:"images"`
	PDFs        []PDF     `json:"pdfs"`

	// Markdown is the page rendered as markdown when available.
	Markdown string `json:"markdown,omitempty"`
}

// EmptyResult returns a placeholder result with empty collections.
// Callers use it to keep displays consistent after a failed scrape.
func EmptyResult(url string) *ScrapeResult {
	return &ScrapeResult{
		URL:         url,
		Timestamp:   time.Now().UTC(),
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Text:        []string{},
		Images:      []Image{},
		PDFs:        []PDF{},
	}
}

// JSON returns the result pretty-printed with a two-space indent.
func (r *ScrapeResult) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// AllText returns every text section joined by a blank line.
func (r *ScrapeResult) AllText() string {
	return strings.Join(r.Text, "\n\n")
}
