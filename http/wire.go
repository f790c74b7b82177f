package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/fwojciec/sitegrab"
)

// scrapeRequest is the body of POST /v0/scrape.
type scrapeRequest struct {
	URL              string           `json:"url"`
	PageOptions      pageOptions      `json:"pageOptions"`
	ExtractorOptions extractorOptions `json:"extractorOptions"`
}

type pageOptions struct {
	IncludeHTML    bool `json:"includeHtml"`
	IncludeRawHTML bool `json:"includeRawHtml"`
}

type extractorOptions struct {
	Mode             string         `json:"mode"`
	ExtractionSchema map[string]any `json:"extractionSchema,omitempty"`
	ExtractionPrompt string         `json:"extractionPrompt,omitempty"`
}

// scrapeResponse is the body returned by the scraping service.
type scrapeResponse struct {
	Success bool          `json:"success"`
	Data    *responseData `json:"data"`
	Error   string        `json:"error"`
}

type responseData struct {
	HTML          string           `json:"html"`
	RawHTML       string           `json:"rawHtml"`
	Markdown      string           `json:"markdown"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Metadata      responseMetadata `json:"metadata"`
	ExtractedData json.RawMessage  `json:"extractedData"`
	LLMExtraction json.RawMessage  `json:"llm_extraction"`
}

type responseMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// payload converts the response data into a sitegrab.Payload.
// Structured extraction wins when the service returned one.
func (d *responseData) payload() (sitegrab.Payload, error) {
	if d == nil {
		return &sitegrab.RawHTMLExtraction{}, nil
	}

	for _, raw := range []json.RawMessage{d.ExtractedData, d.LLMExtraction} {
		if !present(raw) {
			continue
		}
		var s sitegrab.StructuredExtraction
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}

	html := d.HTML
	if strings.TrimSpace(html) == "" {
		html = d.RawHTML
	}

	return &sitegrab.RawHTMLExtraction{
		HTML:        html,
		Markdown:    d.Markdown,
		Title:       firstNonEmpty(d.Title, d.Metadata.Title),
		Description: firstNonEmpty(d.Description, d.Metadata.Description),
	}, nil
}

func present(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

const extractionPrompt = "Extract the page title, the meta description, every meaningful " +
	"paragraph of body text in reading order, every image with its alt text, and every " +
	"link to a PDF document with its link text."

// extractionSchema describes the structured extraction requested from the service.
func extractionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"textContent": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"images": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"src": map[string]any{"type": "string"},
						"alt": map[string]any{"type": "string"},
					},
					"required": []string{"src"},
				},
			},
			"pdfLinks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"href":  map[string]any{"type": "string"},
						"title": map[string]any{"type": "string"},
					},
					"required": []string{"href"},
				},
			},
		},
		"required": []string{"title", "textContent"},
	}
}
