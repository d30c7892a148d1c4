// Package config loads scraper and server settings from an optional
// YAML file. Every field has a working default, so the binaries run
// with no arguments at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/baxromumarov/medal-map/internal/scraper"
)

var (
	ErrNoSources          = errors.New("at least one source is required")
	ErrSourceMissingURL   = errors.New("source url is required")
	ErrUnknownOlympiad    = errors.New("source olympiad must be one of: IMO, IOI, IPhO")
	ErrDuplicateOlympiad  = errors.New("each olympiad may appear only once")
	ErrMissingOutputPath  = errors.New("output path is required")
	ErrInvalidTimeout     = errors.New("timeout_sec must be at least 1")
	ErrInvalidCutoffYear  = errors.New("cutoff_year looks implausible")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrNegativeInterval   = errors.New("interval_min must be non-negative")
	ErrInvalidInceptYears = errors.New("source inception year looks implausible")
)

type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type ScraperConfig struct {
	Output      string         `yaml:"output"`
	CutoffYear  int            `yaml:"cutoff_year"`
	TimeoutSec  int            `yaml:"timeout_sec"`
	IntervalMin int            `yaml:"interval_min"`
	UserAgent   string         `yaml:"user_agent"`
	DatabaseURL string         `yaml:"database_url"`
	Sources     []SourceConfig `yaml:"sources"`
}

type SourceConfig struct {
	Olympiad  scraper.Olympiad `yaml:"olympiad"`
	URL       string           `yaml:"url"`
	Inception int              `yaml:"inception"`
	Enabled   bool             `yaml:"enabled"`
}

type ServerConfig struct {
	Port   string `yaml:"port"`
	WebDir string `yaml:"web_dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: the three public olympiad
// sources and the output path the renderer fetches.
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			Output:     "web/data/medals.json",
			CutoffYear: time.Now().Year(),
			TimeoutSec: 15,
			UserAgent:  "medal-map-bot/1.0",
			Sources: []SourceConfig{
				{
					Olympiad:  scraper.IMO,
					URL:       "https://en.wikipedia.org/wiki/List_of_countries_by_medal_count_at_International_Mathematical_Olympiad",
					Inception: 1959,
					Enabled:   true,
				},
				{
					Olympiad:  scraper.IOI,
					URL:       "https://stats.ioinformatics.org/countries/?sort=medals_desc",
					Inception: 1989,
					Enabled:   true,
				},
				{
					Olympiad:  scraper.IPhO,
					URL:       "http://ipho-unofficial.org/countries/",
					Inception: 1967,
					Enabled:   true,
				},
			},
		},
		Server: ServerConfig{
			Port:   "8080",
			WebDir: "web",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config from path, layered over Default. An empty
// path returns the defaults. Env vars DATABASE_URL and PORT override
// their file counterparts.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Scraper.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Scraper.Sources) == 0 {
		return ErrNoSources
	}

	seen := map[scraper.Olympiad]bool{}
	for i, src := range c.Scraper.Sources {
		switch src.Olympiad {
		case scraper.IMO, scraper.IOI, scraper.IPhO:
		default:
			return fmt.Errorf("%w: source[%d]", ErrUnknownOlympiad, i)
		}
		if seen[src.Olympiad] {
			return fmt.Errorf("%w: %s", ErrDuplicateOlympiad, src.Olympiad)
		}
		seen[src.Olympiad] = true
		if src.URL == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingURL, i)
		}
		if src.Inception < 1900 || src.Inception > 2100 {
			return fmt.Errorf("%w: source[%d]", ErrInvalidInceptYears, i)
		}
	}

	if c.Scraper.Output == "" {
		return ErrMissingOutputPath
	}
	if c.Scraper.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if c.Scraper.CutoffYear < 1959 || c.Scraper.CutoffYear > 2100 {
		return ErrInvalidCutoffYear
	}
	if c.Scraper.IntervalMin < 0 {
		return ErrNegativeInterval
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// EnabledSources returns only enabled sources.
func (c *Config) EnabledSources() []SourceConfig {
	var enabled []SourceConfig
	for _, src := range c.Scraper.Sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}
	return enabled
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Scraper.TimeoutSec) * time.Second
}

// Interval returns the loop interval, zero meaning run once.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Scraper.IntervalMin) * time.Minute
}

// YearRange formats an olympiad's covered span for the metadata block.
func (s SourceConfig) YearRange(cutoff int) string {
	return fmt.Sprintf("%d-%d", s.Inception, cutoff)
}
