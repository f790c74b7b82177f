// Package htmltomarkdown renders scraped page content as markdown.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitegrab"
)

// Ensure Converter implements sitegrab.Converter at compile time.
var _ sitegrab.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// It is safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. When pageURL is absolute,
// relative link and image targets are resolved against it.
func (c *Converter) Convert(html string, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitegrab.Errorf(sitegrab.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if base := pageBase(pageURL); base != "" {
		opts = append(opts, converter.WithDomain(base))
	}

	return c.conv.ConvertString(html, opts...)
}

// pageBase returns rawURL without its fragment, or "" when it is not an
// absolute URL with a host. The converter resolves references against the
// full URL, so directory-relative links keep the page's path.
func pageBase(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ""
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
