package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitegrab"
)

// extractImages returns every img element with a resolvable src.
// Query strings and fragments are stripped from src before resolution.
func extractImages(doc *goquery.Document, base *url.URL) []sitegrab.Image {
	images := []sitegrab.Image{}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			return
		}

		resolved, ok := resolveURL(base, stripQueryAndFragment(src))
		if !ok {
			return
		}

		images = append(images, sitegrab.Image{
			Src: resolved.String(),
			Alt: imageAlt(sel.AttrOr("alt", "")),
		})
	})

	return images
}

// extractPDFs returns every anchor whose href ends in .pdf.
// The title is the link text, or derived from the filename when the link
// has no text.
func extractPDFs(doc *goquery.Document, base *url.URL) []sitegrab.PDF {
	pdfs := []sitegrab.PDF{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if !strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return
		}

		resolved, ok := resolveURL(base, href)
		if !ok {
			return
		}

		pdfs = append(pdfs, sitegrab.PDF{
			Href:  resolved.String(),
			Title: pdfTitle(sel.Text(), resolved),
		})
	})

	return pdfs
}

// resolveURL resolves a possibly-relative reference against base.
// Returns false for empty or malformed references.
func resolveURL(base *url.URL, ref string) (*url.URL, bool) {
	if ref == "" {
		return nil, false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil, false
	}
	resolved := base.ResolveReference(u)
	if !resolved.IsAbs() {
		return nil, false
	}
	return resolved, true
}

// stripQueryAndFragment cuts src at the first "?" or "#".
func stripQueryAndFragment(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		return src[:i]
	}
	return src
}

func imageAlt(alt string) string {
	if alt = strings.TrimSpace(alt); alt != "" {
		return alt
	}
	return sitegrab.DefaultImageAlt
}

func pdfTitle(linkText string, href *url.URL) string {
	if title := strings.Join(strings.Fields(linkText), " "); title != "" {
		return title
	}
	if title := sitegrab.TitleFromFilename(path.Base(href.EscapedPath())); title != "" {
		return title
	}
	return sitegrab.DefaultPDFTitle
}
