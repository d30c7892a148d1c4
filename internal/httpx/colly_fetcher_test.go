package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/stretchr/testify/require"
)

func TestCollyFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><table class="wikitable"><tr><td>x</td></tr></table></html>`))
	}))
	t.Cleanup(srv.Close)

	f := NewCollyFetcher("", time.Second)

	seen := false
	err := f.Fetch(context.Background(), srv.URL+"/page", func(c *colly.Collector) {
		c.OnHTML("table.wikitable", func(e *colly.HTMLElement) {
			seen = true
		})
	})
	require.NoError(t, err)
	require.True(t, seen, "OnHTML callback should fire")
}

func TestCollyFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	t.Cleanup(srv.Close)

	f := NewCollyFetcher("", time.Second)

	err := f.Fetch(context.Background(), srv.URL+"/page", nil)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusGone, fe.Status)
}
