package sitegrab

import (
	"fmt"
	"strings"
)

// FormatResult formats a result for terminal display, grouping the content
// into text, image and PDF sections separated by blank lines.
// Empty categories are listed with a "(none)" marker.
func FormatResult(r *ScrapeResult) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n%s\n%s\n", r.Title, r.URL, r.Description)

	fmt.Fprintf(&b, "\n## Text (%d)\n", len(r.Text))
	if len(r.Text) == 0 {
		b.WriteString("(none)\n")
	}
	for _, t := range r.Text {
		b.WriteString(t)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n## Images (%d)\n", len(r.Images))
	if len(r.Images) == 0 {
		b.WriteString("(none)\n")
	}
	for _, img := range r.Images {
		fmt.Fprintf(&b, "- %s (%s)\n", img.Src, img.Alt)
	}

	fmt.Fprintf(&b, "\n## PDFs (%d)\n", len(r.PDFs))
	if len(r.PDFs) == 0 {
		b.WriteString("(none)\n")
	}
	for _, pdf := range r.PDFs {
		fmt.Fprintf(&b, "- %s: %s\n", pdf.Title, pdf.Href)
	}

	return b.String()
}
