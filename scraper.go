package sitegrab

import "context"

// Scraper fetches a single page through the scraping service and returns
// its normalized content.
type Scraper interface {
	// Scrape fetches url and returns the normalized result.
	// Returns EINVALID for an empty URL, EMISSINGCREDENTIAL when no API key
	// is configured, ETRANSPORT for non-success HTTP responses, ESERVICE when
	// the service reports failure, and EUNKNOWN for anything else.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// Normalizer turns a service payload into a ScrapeResult.
type Normalizer interface {
	// Normalize converts the payload, resolving relative URLs against originURL.
	// Returns EPARSE only when the document itself cannot be parsed.
	Normalize(payload Payload, originURL string) (*ScrapeResult, error)
}
