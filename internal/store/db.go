// Package store archives scrape runs in Postgres. The archive is
// optional; the pipeline runs without it when no DATABASE_URL is set.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/baxromumarov/medal-map/internal/dataset"
)

type Store struct {
	db *sql.DB
}

func NewStore(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) RunMigrations(schemaPath string) error {
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// SaveRun archives a generated dataset: one row per run plus one row per
// country per olympiad. All inserts share a transaction so a failed run
// never leaves a partial archive.
func (s *Store) SaveRun(ctx context.Context, ds *dataset.Dataset) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx failed: %w", err)
	}
	defer tx.Rollback()

	var runID int
	err = tx.QueryRowContext(ctx, `
INSERT INTO runs (generated_at, country_count, created_at)
VALUES ($1, $2, NOW())
RETURNING id
`, ds.Metadata.Generated, len(ds.Countries)).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("insert run failed: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO run_countries (run_id, code, name, olympiad, gold, silver, bronze, total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert failed: %w", err)
	}
	defer stmt.Close()

	for code, c := range ds.Countries {
		rows := []struct {
			olympiad string
			medals   dataset.MedalCount
		}{
			{"IMO", c.Medals.IMO},
			{"IOI", c.Medals.IOI},
			{"IPhO", c.Medals.IPhO},
		}
		for _, r := range rows {
			if r.medals.Total == 0 {
				continue
			}
			if _, err := stmt.ExecContext(ctx, runID, code, c.Name, r.olympiad,
				r.medals.Gold, r.medals.Silver, r.medals.Bronze, r.medals.Total); err != nil {
				return 0, fmt.Errorf("insert country row failed: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit failed: %w", err)
	}
	return runID, nil
}
