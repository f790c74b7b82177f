package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitegrab"
)

// Format is an export format for scrape results.
type Format string

// Supported export formats.
const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatMarkdown:
		return "md"
	default:
		return "json"
	}
}

// Render serializes result in the given format.
func Render(result *sitegrab.ScrapeResult, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return result.JSON()
	case FormatText:
		return []byte(result.AllText()), nil
	case FormatMarkdown:
		return []byte(FormatMarkdown(result)), nil
	default:
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "unsupported export format %q", format)
	}
}

// FormatMarkdown formats a result with YAML frontmatter. The body is the
// page markdown, or the text sections when no markdown is available.
func FormatMarkdown(result *sitegrab.ScrapeResult) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(result.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(result.Title)
	b.WriteString("\nscraped: ")
	b.WriteString(result.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	b.WriteString("\n---\n\n")

	if result.Markdown != "" {
		b.WriteString(result.Markdown)
	} else {
		b.WriteString(result.AllText())
	}

	if len(result.PDFs) > 0 {
		b.WriteString("\n\n## PDFs\n\n")
		for _, pdf := range result.PDFs {
			fmt.Fprintf(&b, "- [%s](%s)\n", pdf.Title, pdf.Href)
		}
	}

	return b.String()
}

var slugRe = regexp.MustCompile(`[^a-zA-Z0-9.]+`)

// ResultFileName derives a file name for a result from its URL.
// Example: https://example.com/docs/api → example.com-docs-api-1a2b3c4d.json
// The hash suffix keeps URLs that differ only in query strings apart.
func ResultFileName(rawURL string, format Format) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sitegrab.Errorf(sitegrab.EINVALID, "invalid result URL: %v", err)
	}

	slug := strings.Trim(slugRe.ReplaceAllString(u.Host+u.Path, "-"), "-.")
	if slug == "" {
		slug = "page"
	}

	hash := fmt.Sprintf("%016x", xxhash.Sum64String(rawURL))[:8]
	return slug + "-" + hash + "." + format.Ext(), nil
}

// Exporter writes scrape results to files in a directory.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes to baseDir.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// Export writes result in format and returns the path of the written file.
func (e *Exporter) Export(ctx context.Context, result *sitegrab.ScrapeResult, format Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := Render(result, format)
	if err != nil {
		return "", err
	}

	name, err := ResultFileName(result.URL, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(e.baseDir, name)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
