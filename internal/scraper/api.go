package scraper

import (
	"context"
	"fmt"
)

// Olympiad tags the three supported competitions.
type Olympiad string

const (
	IMO  Olympiad = "IMO"
	IOI  Olympiad = "IOI"
	IPhO Olympiad = "IPhO"
)

// MedalRow is one country's cumulative tally as printed by a source table.
type MedalRow struct {
	Country string
	Gold    int
	Silver  int
	Bronze  int
}

// Result carries the parsed rows plus the number of rows that looked like
// data but could not be parsed (and were skipped).
type Result struct {
	Rows        []MedalRow
	SkippedRows int
}

type MedalScraper interface {
	Olympiad() Olympiad
	FetchMedals(ctx context.Context) (Result, error)
}

// ParseError reports a source page whose markup does not match the
// expected table structure.
type ParseError struct {
	Source string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse failed: %s", e.Source, e.Reason)
}
