package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/medal-map/internal/countries"
	"github.com/baxromumarov/medal-map/internal/dataset"
	"github.com/baxromumarov/medal-map/internal/scraper"
)

// Needs a reachable Postgres; set TEST_DATABASE_URL to run.
func TestSaveRun(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	s, err := NewStore(connStr)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.RunMigrations(filepath.Join(".", "schema.sql")))

	b := dataset.NewBuilder()
	b.Add(scraper.IMO, countries.Country{Code: "HUN", Alpha2: "HU", Name: "Hungary"}, 85, 171, 110)
	ds := b.Build(dataset.Metadata{Generated: "2026-01-01T00:00:00Z"})

	runID, err := s.SaveRun(context.Background(), ds)
	require.NoError(t, err)
	require.Greater(t, runID, 0)
}
