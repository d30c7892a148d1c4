package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/baxromumarov/medal-map/internal/countries"
	"github.com/baxromumarov/medal-map/internal/httpx"
	"github.com/baxromumarov/medal-map/internal/scraper"
)

const (
	ErrorNetwork   = "network"
	ErrorParsing   = "parsing"
	ErrorMapping   = "mapping"
	ErrorRateLimit = "rate_limit"
	ErrorStore     = "store"
	ErrorUnknown   = "unknown"
)

// ClassifyScrapeError buckets pipeline errors for the stats counters.
func ClassifyScrapeError(err error) string {
	if err == nil {
		return ErrorUnknown
	}

	var fe *httpx.FetchError
	if errors.As(err, &fe) {
		if fe.Status == http.StatusTooManyRequests {
			return ErrorRateLimit
		}
		return ErrorNetwork
	}

	var pe *scraper.ParseError
	if errors.As(err, &pe) {
		return ErrorParsing
	}

	var me *countries.MappingError
	if errors.As(err, &me) {
		return ErrorMapping
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorNetwork
	}
	return ErrorUnknown
}
