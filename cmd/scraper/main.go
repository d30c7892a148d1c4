package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/baxromumarov/medal-map/internal/config"
	"github.com/baxromumarov/medal-map/internal/core"
	"github.com/baxromumarov/medal-map/internal/httpx"
	"github.com/baxromumarov/medal-map/internal/scraper"
	"github.com/baxromumarov/medal-map/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	output := flag.String("output", "", "output JSON file path (overrides config)")
	once := flag.Bool("once", false, "run a single scrape even if interval_min is set")
	flag.Parse()

	if *configPath == "" {
		if _, err := os.Stat("configs/scraper.yaml"); err == nil {
			*configPath = "configs/scraper.yaml"
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Scraper.Output = *output
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	collyFetcher := httpx.NewCollyFetcher(cfg.Scraper.UserAgent, cfg.Timeout())
	politeClient := httpx.NewPoliteClient(cfg.Scraper.UserAgent, cfg.Timeout())

	var scrapers []scraper.MedalScraper
	ranges := map[scraper.Olympiad]string{}
	for _, src := range cfg.EnabledSources() {
		switch src.Olympiad {
		case scraper.IMO:
			scrapers = append(scrapers, scraper.NewIMOScraper(src.URL, collyFetcher))
		case scraper.IOI:
			scrapers = append(scrapers, scraper.NewIOIScraper(src.URL, politeClient))
		case scraper.IPhO:
			scrapers = append(scrapers, scraper.NewIPhOScraper(src.URL, politeClient))
		}
		ranges[src.Olympiad] = src.YearRange(cfg.Scraper.CutoffYear)
	}
	if len(scrapers) == 0 {
		slog.Error("no enabled sources")
		os.Exit(1)
	}

	pipeline := core.NewPipeline(scrapers, ranges, cfg.Scraper.Output)

	if cfg.Scraper.DatabaseURL != "" {
		dbStore, err := store.NewStore(cfg.Scraper.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to archive store", "error", err)
			os.Exit(1)
		}
		defer dbStore.Close()

		workDir, _ := os.Getwd()
		schemaPath := filepath.Join(workDir, "internal", "store", "schema.sql")
		if err := dbStore.RunMigrations(schemaPath); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		pipeline.WithArchive(dbStore)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if interval := cfg.Interval(); interval > 0 && !*once {
		slog.Info("starting scrape loop", "interval", interval)
		pipeline.RunLoop(ctx, interval)
		return
	}

	ds, err := pipeline.RunOnce(ctx)
	if err != nil {
		slog.Error("scrape failed", "error", err)
		os.Exit(1)
	}
	slog.Info("scrape complete", "countries", len(ds.Countries), "sources", ds.Metadata.Sources)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
