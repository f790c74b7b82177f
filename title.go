package sitegrab

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	filenameSeparators = strings.NewReplacer("-", " ", "_", " ", ".", " ")

	// Matches "<name> 8 18 11" and captures "<name>".
	trailingDateRe = regexp.MustCompile(`^(.*\S)\s+\d+\s+\d+\s+\d+\s*$`)
)

// TitleFromFilename derives a human-readable title from a PDF filename.
//
// Example: "annual-report-2023.pdf" becomes "Annual Report 2023" and
// "Erie-Settle-8-18-11.pdf" becomes "Erie Settle".
func TitleFromFilename(filename string) string {
	name, err := url.PathUnescape(filename)
	if err != nil {
		name = filename
	}

	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name = name[:len(name)-len(".pdf")]
	}

	name = filenameSeparators.Replace(name)

	if m := trailingDateRe.FindStringSubmatch(name); m != nil {
		name = m[1]
	}

	words := strings.Fields(name)
	for i, w := range words {
		words[i] = titleWord(w)
	}

	return strings.TrimSpace(strings.Join(words, " "))
}

// titleWord capitalizes w unless it is an all-caps acronym.
func titleWord(w string) string {
	if utf8.RuneCountInString(w) > 1 && w == strings.ToUpper(w) {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
