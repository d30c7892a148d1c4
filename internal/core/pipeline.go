package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/baxromumarov/medal-map/internal/countries"
	"github.com/baxromumarov/medal-map/internal/dataset"
	"github.com/baxromumarov/medal-map/internal/observability"
	"github.com/baxromumarov/medal-map/internal/scraper"
)

// ErrAllSourcesFailed is returned when not a single olympiad source
// produced data. Partial success is not an error.
var ErrAllSourcesFailed = errors.New("all olympiad sources failed")

// Archiver persists a finished dataset; satisfied by store.Store.
type Archiver interface {
	SaveRun(ctx context.Context, ds *dataset.Dataset) (int, error)
}

// Pipeline runs the scrape, normalizes country names, aggregates the
// medal counts, and writes the dataset file. Sources are fetched
// sequentially; a failure in one never touches another's data.
type Pipeline struct {
	scrapers []scraper.MedalScraper
	ranges   map[scraper.Olympiad]string
	output   string
	archive  Archiver
	now      func() time.Time
}

func NewPipeline(scrapers []scraper.MedalScraper, ranges map[scraper.Olympiad]string, output string) *Pipeline {
	return &Pipeline{
		scrapers: scrapers,
		ranges:   ranges,
		output:   output,
		now:      time.Now,
	}
}

// WithArchive attaches an optional run archive.
func (p *Pipeline) WithArchive(a Archiver) *Pipeline {
	p.archive = a
	return p
}

// RunOnce performs one full regeneration. The previous dataset file is
// replaced atomically; there is no partial merge.
func (p *Pipeline) RunOnce(ctx context.Context) (*dataset.Dataset, error) {
	b := dataset.NewBuilder()
	succeeded := 0

	for _, s := range p.scrapers {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		oly := s.Olympiad()
		component := "scraper_" + strings.ToLower(string(oly))

		start := time.Now()
		res, err := s.FetchMedals(ctx)
		observability.ObserveFetchDuration(time.Since(start).Seconds())
		if err != nil {
			observability.IncError(observability.ClassifyScrapeError(err), component)
			slog.Warn("source failed, continuing with the others", "olympiad", oly, "error", err)
			continue
		}

		observability.IncSourcesFetched()
		observability.AddRowsParsed(len(res.Rows))
		observability.AddRowsSkipped(res.SkippedRows)
		if res.SkippedRows > 0 {
			slog.Warn("skipped malformed table rows", "olympiad", oly, "rows", res.SkippedRows)
		}

		for _, row := range res.Rows {
			c, err := countries.Resolve(row.Country)
			if errors.Is(err, countries.ErrHistorical) {
				slog.Debug("dropping historical state", "olympiad", oly, "country", row.Country)
				continue
			}
			if err != nil {
				observability.IncMappingMiss()
				observability.IncError(observability.ClassifyScrapeError(err), component)
				slog.Warn("dropping unmappable country", "olympiad", oly, "country", row.Country)
				continue
			}
			observability.IncCountriesMapped()
			b.Add(oly, c, row.Gold, row.Silver, row.Bronze)
		}

		slog.Info("source scraped", "olympiad", oly, "rows", len(res.Rows))
		succeeded++
	}

	if succeeded == 0 {
		return nil, ErrAllSourcesFailed
	}

	ds := b.Build(dataset.Metadata{
		Generated: p.now().UTC().Format(time.RFC3339),
		IMOYears:  p.ranges[scraper.IMO],
		IOIYears:  p.ranges[scraper.IOI],
		IPhOYears: p.ranges[scraper.IPhO],
	})

	if err := dataset.Write(p.output, ds); err != nil {
		return nil, err
	}
	slog.Info("dataset written", "path", p.output, "countries", len(ds.Countries))

	if p.archive != nil {
		if runID, err := p.archive.SaveRun(ctx, ds); err != nil {
			observability.IncError(observability.ErrorStore, "archive")
			slog.Warn("run archive failed", "error", err)
		} else {
			slog.Info("run archived", "run_id", runID)
		}
	}

	return ds, nil
}

// RunLoop regenerates on an interval until the context is canceled.
// Each pass is a full re-scrape; re-running is the retry mechanism.
func (p *Pipeline) RunLoop(ctx context.Context, interval time.Duration) error {
	if _, err := p.RunOnce(ctx); err != nil {
		slog.Error("scrape run failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := p.RunOnce(ctx); err != nil {
				slog.Error("scrape run failed", "error", err)
			}
		}
	}
}
