// Package http implements sitegrab.Scraper against a hosted scraping API
// reached over HTTP.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitegrab"
	"github.com/google/uuid"
)

// DefaultBaseURL is the scraping service endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds a single scrape request.
const DefaultTimeout = 60 * time.Second

// Mode selects what the scraping service is asked to return.
type Mode string

// Supported modes.
const (
	// ModeStructured asks the service to extract content against a schema.
	ModeStructured Mode = "structured"

	// ModeRaw asks for the page HTML, which is normalized locally.
	ModeRaw Mode = "raw"
)

// Ensure Scraper implements sitegrab.Scraper at compile time.
var _ sitegrab.Scraper = (*Scraper)(nil)

// Scraper scrapes pages through the hosted scraping API.
// Each call performs exactly one request and never retries.
type Scraper struct {
	credentials sitegrab.CredentialSource
	normalizer  sitegrab.Normalizer

	client  *http.Client
	baseURL string
	timeout time.Duration
	mode    Mode
	now     func() time.Time
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithBaseURL overrides the service endpoint.
func WithBaseURL(baseURL string) ScraperOption {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the request timeout.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) ScraperOption {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// WithHTTPClient sets the client used for requests. Its timeout is left as is.
func WithHTTPClient(c *http.Client) ScraperOption {
	return func(s *Scraper) {
		s.client = c
	}
}

// WithMode selects structured or raw extraction. Defaults to ModeStructured.
func WithMode(m Mode) ScraperOption {
	return func(s *Scraper) {
		s.mode = m
	}
}

// WithNow sets the clock used to timestamp placeholder results.
func WithNow(now func() time.Time) ScraperOption {
	return func(s *Scraper) {
		s.now = now
	}
}

// NewScraper creates a new Scraper resolving its API key from credentials
// and handing payloads to normalizer.
func NewScraper(credentials sitegrab.CredentialSource, normalizer sitegrab.Normalizer, opts ...ScraperOption) *Scraper {
	s := &Scraper{
		credentials: credentials,
		normalizer:  normalizer,
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		mode:        ModeStructured,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Scrape fetches rawURL through the scraping service and normalizes the
// response. A scheme-less URL is treated as https.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*sitegrab.ScrapeResult, error) {
	target, err := sitegrab.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	apiKey, err := s.apiKey()
	if err != nil {
		return nil, err
	}

	resp, err := s.do(ctx, apiKey, target)
	if err != nil {
		return nil, err
	}

	payload, err := resp.Data.payload()
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EUNKNOWN, "malformed extraction: %v", err)
	}

	result, err := s.normalizer.Normalize(payload, target)
	if err != nil {
		// An unparseable document means nothing was extracted, not a failed scrape.
		if sitegrab.ErrorCode(err) == sitegrab.EPARSE {
			empty := sitegrab.EmptyResult(target)
			empty.Timestamp = s.now().UTC()
			return empty, nil
		}
		return nil, err
	}
	return result, nil
}

func (s *Scraper) apiKey() (string, error) {
	if s.credentials == nil {
		return "", sitegrab.Errorf(sitegrab.EMISSINGCREDENTIAL, "no API key configured")
	}
	key, err := s.credentials.APIKey()
	if err != nil {
		if sitegrab.ErrorCode(err) == sitegrab.EMISSINGCREDENTIAL {
			return "", err
		}
		return "", sitegrab.Errorf(sitegrab.EMISSINGCREDENTIAL, "failed to read API key: %v", err)
	}
	if strings.TrimSpace(key) == "" {
		return "", sitegrab.Errorf(sitegrab.EMISSINGCREDENTIAL, "no API key configured")
	}
	return strings.TrimSpace(key), nil
}

// do performs the single request and classifies the response.
func (s *Scraper) do(ctx context.Context, apiKey, target string) (*scrapeResponse, error) {
	body, err := json.Marshal(s.newRequest(target))
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EUNKNOWN, "failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v0/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EUNKNOWN, "failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EUNKNOWN, "request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EUNKNOWN, "failed to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &sitegrab.Error{
			Code:    sitegrab.ETRANSPORT,
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, errorMessage(data, resp.StatusCode)),
			Status:  resp.StatusCode,
		}
	}

	var sr scrapeResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, sitegrab.Errorf(sitegrab.EUNKNOWN, "malformed response: %v", err)
	}

	if !sr.Success {
		msg := strings.TrimSpace(sr.Error)
		if msg == "" {
			msg = "scrape failed"
		}
		return nil, sitegrab.Errorf(sitegrab.ESERVICE, "%s", msg)
	}

	return &sr, nil
}

func (s *Scraper) newRequest(target string) scrapeRequest {
	req := scrapeRequest{
		URL: target,
		PageOptions: pageOptions{
			IncludeHTML:    true,
			IncludeRawHTML: s.mode == ModeRaw,
		},
	}

	switch s.mode {
	case ModeRaw:
		req.ExtractorOptions = extractorOptions{Mode: "markdown"}
	default:
		req.ExtractorOptions = extractorOptions{
			Mode:             "llm-extraction",
			ExtractionSchema: extractionSchema(),
			ExtractionPrompt: extractionPrompt,
		}
	}

	return req
}

// errorMessage returns the service's error message from a failed response,
// falling back to the HTTP status text.
func errorMessage(body []byte, status int) string {
	var sr scrapeResponse
	if err := json.Unmarshal(body, &sr); err == nil {
		if msg := strings.TrimSpace(sr.Error); msg != "" {
			return msg
		}
	}
	return http.StatusText(status)
}
