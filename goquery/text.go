package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var (
	boilerplateMatcher = cascadia.MustCompile("script, style, noscript, iframe, nav, header, footer")

	// Content roots in priority order: semantic containers beat class names
	// wherever they appear in the document.
	contentRootMatchers = []cascadia.Matcher{
		cascadia.MustCompile("main"),
		cascadia.MustCompile("article"),
		cascadia.MustCompile(`[role="main"]`),
		cascadia.MustCompile(".content, .main-content, #content, .post-content, .entry-content, .article-body"),
	}

	textMatcher    = cascadia.MustCompile("h1, h2, h3, h4, h5, h6, p, li, td, th, blockquote, code")
	headingMatcher = cascadia.MustCompile("h1, h2, h3, h4, h5, h6")
)

// contentRoot strips boilerplate elements from doc and returns the main
// content container. Falls back to body, then to the whole document.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	doc.FindMatcher(boilerplateMatcher).Remove()

	for _, m := range contentRootMatchers {
		if root := doc.FindMatcher(m).First(); root.Length() > 0 {
			return root
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// extractText collects text from content elements in document order.
// Duplicates are dropped first, then body text shorter than MinTextLength.
func extractText(root *goquery.Selection) []string {
	seen := make(map[string]struct{})
	text := []string{}

	root.FindMatcher(textMatcher).Each(func(_ int, sel *goquery.Selection) {
		t := strings.TrimSpace(sel.Text())
		if t == "" {
			return
		}

		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}

		if utf8.RuneCountInString(t) < MinTextLength && !sel.IsMatcher(headingMatcher) {
			return
		}

		text = append(text, t)
	})

	return text
}

var (
	// RE2 has no backreferences, so script and style are matched separately.
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style\s*>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// StripTags removes markup from rawHTML and collapses whitespace.
// It is the last-resort text extraction used when the document cannot be
// parsed; it does not understand nesting or quoted attributes.
func StripTags(rawHTML string) string {
	s := scriptRe.ReplaceAllString(rawHTML, " ")
	s = styleRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
