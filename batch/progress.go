package batch

import (
	"fmt"
	"io"
)

// maxProgressURLLen bounds the URL shown on a progress line.
const maxProgressURLLen = 60

// ProgressWriter returns a ProgressFunc that writes one line per finished
// scrape to w, e.g. "[2/5] ok .../docs/page".
func ProgressWriter(w io.Writer) ProgressFunc {
	return func(completed, total int, o Outcome) {
		status := "ok"
		if o.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(w, "[%d/%d] %s %s\n", completed, total, status, TruncateURL(o.URL, maxProgressURLLen))
	}
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative. URLs are measured in runes.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(url)
	if len(r) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return string(r[:maxLen])
	}
	return "..." + string(r[len(r)-maxLen+3:])
}
