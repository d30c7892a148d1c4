package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func politeTestServer(t *testing.T, robots string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		if robots == "" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(robots))
	})
	mux.HandleFunc("/countries/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><table></table></html>"))
	})
	mux.HandleFunc("/private/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPoliteClientGet(t *testing.T) {
	srv := politeTestServer(t, "")
	c := NewPoliteClient("", time.Second)

	body, err := c.Get(context.Background(), srv.URL+"/countries/")
	require.NoError(t, err)
	require.Contains(t, string(body), "<table>")
}

func TestPoliteClientStatusError(t *testing.T) {
	srv := politeTestServer(t, "")
	c := NewPoliteClient("", time.Second)

	_, err := c.Get(context.Background(), srv.URL+"/nope")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusNotFound, fe.Status)
}

func TestPoliteClientHonorsRobots(t *testing.T) {
	srv := politeTestServer(t, "User-agent: *\nDisallow: /private/\n")
	c := NewPoliteClient("", time.Second)

	_, err := c.Get(context.Background(), srv.URL+"/private/")
	require.Error(t, err)
	require.Contains(t, err.Error(), "robots.txt")

	_, err = c.Get(context.Background(), srv.URL+"/countries/")
	require.NoError(t, err)
}

func TestPoliteClientEmptyURL(t *testing.T) {
	c := NewPoliteClient("", time.Second)
	_, err := c.Get(context.Background(), "")
	require.Error(t, err)
}

func TestFetchError(t *testing.T) {
	inner := errors.New("connection refused")
	fe := &FetchError{Status: 502, Err: inner}

	require.Contains(t, fe.Error(), "502")
	require.ErrorIs(t, fe, inner)

	bare := &FetchError{Status: 404}
	require.Contains(t, bare.Error(), "404")
}

func TestNormalizeHelpers(t *testing.T) {
	u, err := normalizeURL("en.wikipedia.org/wiki/IMO")
	require.NoError(t, err)
	require.Equal(t, "https://en.wikipedia.org/wiki/IMO", u)

	require.Equal(t, "example.org", normalizeHost("WWW.Example.org"))
	require.Equal(t, "example.org", hostKey("https://www.example.org/path"))
}
