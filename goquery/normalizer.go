// Package goquery implements sitegrab.Normalizer on top of goquery,
// turning scraping service payloads into ScrapeResults.
package goquery

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitegrab"
	"golang.org/x/net/html"
)

// MinTextLength is the minimum length of a body text snippet in raw HTML mode.
// Headings are kept regardless of length.
const MinTextLength = 10

// Ensure Normalizer implements sitegrab.Normalizer at compile time.
var _ sitegrab.Normalizer = (*Normalizer)(nil)

// Normalizer converts structured extractions and raw HTML into ScrapeResults.
type Normalizer struct {
	extractor sitegrab.Extractor
	converter sitegrab.Converter
	now       func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithExtractor sets the metadata extractor used when the markup has no
// title or description.
func WithExtractor(e sitegrab.Extractor) Option {
	return func(n *Normalizer) {
		n.extractor = e
	}
}

// WithConverter sets the converter used to render the main content as
// markdown when the payload carries none.
func WithConverter(c sitegrab.Converter) Option {
	return func(n *Normalizer) {
		n.converter = c
	}
}

// WithNow sets the clock used for result timestamps.
func WithNow(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts payload into a ScrapeResult, resolving relative URLs
// against originURL.
//
// Structured payloads are lifted as-is: text is the title, the description
// and the extracted text content in that order, without deduplication.
// Raw HTML payloads are parsed and mined for text, images and PDF links.
func (n *Normalizer) Normalize(payload sitegrab.Payload, originURL string) (*sitegrab.ScrapeResult, error) {
	base, err := url.Parse(originURL)
	if err != nil || !base.IsAbs() {
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "invalid origin URL: %q", originURL)
	}

	var result *sitegrab.ScrapeResult
	switch p := payload.(type) {
	case *sitegrab.StructuredExtraction:
		if p == nil {
			return nil, sitegrab.Errorf(sitegrab.EINVALID, "empty payload")
		}
		result = n.normalizeStructured(p, base)
	case *sitegrab.RawHTMLExtraction:
		if p == nil {
			return nil, sitegrab.Errorf(sitegrab.EINVALID, "empty payload")
		}
		result = n.normalizeRaw(p, base)
	default:
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "unsupported payload type %T", payload)
	}

	result.URL = originURL
	result.Timestamp = n.now().UTC()
	return result, nil
}

func (n *Normalizer) normalizeStructured(p *sitegrab.StructuredExtraction, base *url.URL) *sitegrab.ScrapeResult {
	title := strings.TrimSpace(p.Title)
	description := strings.TrimSpace(p.Description)

	text := make([]string, 0, len(p.TextContent)+2)
	if title != "" {
		text = append(text, title)
	}
	if description != "" {
		text = append(text, description)
	}
	for _, t := range p.TextContent {
		if t != "" {
			text = append(text, t)
		}
	}

	images := make([]sitegrab.Image, 0, len(p.Images))
	for _, img := range p.Images {
		src, ok := resolveURL(base, strings.TrimSpace(img.Src))
		if !ok {
			continue
		}
		images = append(images, sitegrab.Image{Src: src.String(), Alt: imageAlt(img.Alt)})
	}

	pdfs := make([]sitegrab.PDF, 0, len(p.PDFLinks))
	for _, pdf := range p.PDFLinks {
		href, ok := resolveURL(base, strings.TrimSpace(pdf.Href))
		if !ok {
			continue
		}
		pdfs = append(pdfs, sitegrab.PDF{Href: href.String(), Title: pdfTitle(pdf.Title, href)})
	}

	return &sitegrab.ScrapeResult{
		Title:       orDefault(title, sitegrab.DefaultTitle),
		Description: orDefault(description, sitegrab.DefaultDescription),
		Text:        text,
		Images:      images,
		PDFs:        pdfs,
	}
}

func (n *Normalizer) normalizeRaw(p *sitegrab.RawHTMLExtraction, base *url.URL) *sitegrab.ScrapeResult {
	doc, err := parseDocument(p.HTML)
	if err != nil {
		// Unreachable with a strings.Reader: html.Parse only fails on read
		// errors. Regex fallback gives one blob of tag-free text, no images
		// or PDFs.
		text := []string{}
		if blob := StripTags(p.HTML); blob != "" {
			text = append(text, blob)
		}
		return &sitegrab.ScrapeResult{
			Title:       orDefault(strings.TrimSpace(p.Title), sitegrab.DefaultTitle),
			Description: orDefault(strings.TrimSpace(p.Description), sitegrab.DefaultDescription),
			Text:        text,
			Images:      []sitegrab.Image{},
			PDFs:        []sitegrab.PDF{},
			Markdown:    p.Markdown,
		}
	}

	meta := n.extractMetadata(doc, p)
	images := extractImages(doc, base)
	pdfs := extractPDFs(doc, base)

	// Text extraction removes boilerplate elements from doc, so it runs last.
	root := contentRoot(doc)
	text := extractText(root)

	markdown := p.Markdown
	if markdown == "" && n.converter != nil {
		markdown = n.convert(root, base)
	}

	return &sitegrab.ScrapeResult{
		Title:       meta.title,
		Description: meta.description,
		Text:        text,
		Images:      images,
		PDFs:        pdfs,
		Markdown:    markdown,
	}
}

func (n *Normalizer) convert(root *goquery.Selection, base *url.URL) string {
	contentHTML, err := goquery.OuterHtml(root)
	if err != nil || strings.TrimSpace(contentHTML) == "" {
		return ""
	}
	markdown, err := n.converter.Convert(contentHTML, base.String())
	if err != nil {
		return ""
	}
	return markdown
}

// parseDocument parses raw HTML into a goquery document. Scripting is
// disabled so noscript content is parsed as elements, which exposes the
// fallback images of lazy-loading pages.
func parseDocument(rawHTML string) (*goquery.Document, error) {
	node, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EPARSE, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
