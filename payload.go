package sitegrab

// Payload is the content returned by the scraping service for one page.
// It is either a *StructuredExtraction or a *RawHTMLExtraction.
type Payload interface {
	payload()
}

// StructuredExtraction is content the service already extracted against
// the requested schema.
type StructuredExtraction struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TextContent []string `json:"textContent"`
	Images      []Image  `json:"images"`
	PDFLinks    []PDF    `json:"pdfLinks"`
}

// RawHTMLExtraction is page markup returned without extraction.
// Title and Description carry service metadata and may be empty.
type RawHTMLExtraction struct {
	HTML        string
	Markdown    string
	Title       string
	Description string
}

func (*StructuredExtraction) payload() {}
func (*RawHTMLExtraction) payload()    {}
