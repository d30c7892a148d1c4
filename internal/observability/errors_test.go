package observability

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/medal-map/internal/countries"
	"github.com/baxromumarov/medal-map/internal/httpx"
	"github.com/baxromumarov/medal-map/internal/scraper"
)

func TestClassifyScrapeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ErrorUnknown},
		{"fetch", &httpx.FetchError{Status: 500}, ErrorNetwork},
		{"wrapped fetch", fmt.Errorf("imo fetch failed: %w", &httpx.FetchError{Status: 502}), ErrorNetwork},
		{"rate limited", &httpx.FetchError{Status: 429}, ErrorRateLimit},
		{"parse", &scraper.ParseError{Source: "ioi", Reason: "no table"}, ErrorParsing},
		{"mapping", &countries.MappingError{Name: "Atlantis"}, ErrorMapping},
		{"deadline", context.DeadlineExceeded, ErrorNetwork},
		{"other", errors.New("boom"), ErrorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyScrapeError(tt.err))
		})
	}
}
