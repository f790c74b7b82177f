package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitegrab"
)

type metadata struct {
	title       string
	description string
}

// extractMetadata resolves the page title and description.
//
// Precedence: service metadata, then document tags, then the configured
// Extractor, then the placeholder defaults.
func (n *Normalizer) extractMetadata(doc *goquery.Document, p *sitegrab.RawHTMLExtraction) metadata {
	m := metadata{
		title:       strings.TrimSpace(p.Title),
		description: strings.TrimSpace(p.Description),
	}

	if m.title == "" {
		m.title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if m.title == "" {
		m.title = metaContent(doc, `meta[property="og:title"]`)
	}
	if m.description == "" {
		m.description = metaContent(doc, `meta[name="description"]`)
	}
	if m.description == "" {
		m.description = metaContent(doc, `meta[property="og:description"]`)
	}

	if (m.title == "" || m.description == "") && n.extractor != nil {
		if res, err := n.extractor.Extract(p.HTML); err == nil && res != nil {
			if m.title == "" {
				m.title = strings.TrimSpace(res.Title)
			}
			if m.description == "" {
				m.description = strings.TrimSpace(res.Description)
			}
		}
	}

	m.title = orDefault(m.title, sitegrab.DefaultTitle)
	m.description = orDefault(m.description, sitegrab.DefaultDescription)
	return m
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}
