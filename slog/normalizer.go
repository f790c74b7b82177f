package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitegrab"
)

// Ensure LoggingNormalizer implements sitegrab.Normalizer.
var _ sitegrab.Normalizer = (*LoggingNormalizer)(nil)

// LoggingNormalizer wraps a Normalizer with debug logging.
type LoggingNormalizer struct {
	next   sitegrab.Normalizer
	logger *slog.Logger
}

// NewLoggingNormalizer creates a new LoggingNormalizer.
func NewLoggingNormalizer(next sitegrab.Normalizer, logger *slog.Logger) *LoggingNormalizer {
	return &LoggingNormalizer{next: next, logger: logger}
}

// Normalize delegates to the wrapped normalizer and logs the payload mode.
func (n *LoggingNormalizer) Normalize(payload sitegrab.Payload, originURL string) (result *sitegrab.ScrapeResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", originURL,
			"mode", payloadMode(payload),
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs, "text", len(result.Text), "images", len(result.Images), "pdfs", len(result.PDFs))
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		n.logger.Debug("normalize", attrs...)
	}(time.Now())
	return n.next.Normalize(payload, originURL)
}

func payloadMode(p sitegrab.Payload) string {
	switch p := p.(type) {
	case *sitegrab.StructuredExtraction:
		return "structured"
	case *sitegrab.RawHTMLExtraction:
		if p != nil {
			return "raw"
		}
	}
	return "(unknown)"
}
