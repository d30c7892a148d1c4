package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := NewServer(t.TempDir(), "")

	rec := doRequest(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestMedalsBeforeFirstScrape(t *testing.T) {
	dir := t.TempDir()
	s := NewServer(dir, filepath.Join(dir, "data", "medals.json"))

	rec := doRequest(t, s, "/api/medals")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "dataset not generated yet", body["error"])
}

func TestMedalsServesDataset(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data", "medals.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(dataPath), 0o755))

	payload := `{"countries":{"HUN":{"code":"HUN"}},"metadata":{"generated":"2026-01-01T00:00:00Z"}}`
	require.NoError(t, os.WriteFile(dataPath, []byte(payload), 0o644))

	s := NewServer(dir, dataPath)

	rec := doRequest(t, s, "/api/medals")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.JSONEq(t, payload, rec.Body.String())
}

func TestStats(t *testing.T) {
	s := NewServer(t.TempDir(), "")

	rec := doRequest(t, s, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Contains(t, snap, "sources_fetched")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>map</html>"), 0o644))

	s := NewServer(dir, "")

	rec := doRequest(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "map")
}
