package sitegrab_test

import (
	"testing"
	"time"

	"github.com/fwojciec/sitegrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyResult(t *testing.T) {
	t.Parallel()

	r := sitegrab.EmptyResult("https://example.com")

	assert.Equal(t, "https://example.com", r.URL)
	assert.Equal(t, sitegrab.DefaultTitle, r.Title)
	assert.Equal(t, sitegrab.DefaultDescription, r.Description)
	assert.NotNil(t, r.Text)
	assert.Empty(t, r.Text)
	assert.NotNil(t, r.Images)
	assert.Empty(t, r.Images)
	assert.NotNil(t, r.PDFs)
	assert.Empty(t, r.PDFs)
	assert.False(t, r.Timestamp.IsZero())
}

func TestScrapeResult_JSON(t *testing.T) {
	t.Parallel()

	t.Run("pretty prints with two-space indent", func(t *testing.T) {
		t.Parallel()

		r := &sitegrab.ScrapeResult{
			URL:         "https://example.com",
			Timestamp:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Title:       "Example",
			Description: "An example",
			Text:        []string{"Hello world!"},
			Images:      []sitegrab.Image{{Src: "https://example.com/a.png", Alt: "A"}},
			PDFs:        []sitegrab.PDF{{Href: "https://example.com/a.pdf", Title: "A"}},
		}

		data, err := r.JSON()
		require.NoError(t, err)

		expected := `{
  "url": "https://example.com",
  "timestamp": "2024-01-02T03:04:05Z",
  "title": "Example",
  "description": "An example",
  "text": [
    "Hello world!"
  ],
  "images": [
    {
      "src": "https://example.com/a.png",
      "alt": "A"
    }
  ],
  "pdfs": [
    {
      "href": "https://example.com/a.pdf",
      "title": "A"
    }
  ]
}`
		assert.Equal(t, expected, string(data))
	})

	t.Run("includes markdown when present", func(t *testing.T) {
		t.Parallel()

		r := sitegrab.EmptyResult("https://example.com")
		r.Markdown = "# Hi"

		data, err := r.JSON()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"markdown": "# Hi"`)
	})
}

func TestScrapeResult_AllText(t *testing.T) {
	t.Parallel()

	r := &sitegrab.ScrapeResult{Text: []string{"First section", "Second section"}}

	assert.Equal(t, "First section\n\nSecond section", r.AllText())
	assert.Empty(t, sitegrab.EmptyResult("https://example.com").AllText())
}
