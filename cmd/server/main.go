package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/baxromumarov/medal-map/internal/api"
	"github.com/baxromumarov/medal-map/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	srv := api.NewServer(cfg.Server.WebDir, cfg.Scraper.Output)

	slog.Info("starting server", "port", cfg.Server.Port, "web_dir", cfg.Server.WebDir)
	if err := http.ListenAndServe(":"+cfg.Server.Port, srv.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
