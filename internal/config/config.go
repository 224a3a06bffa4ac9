// Package config loads process configuration: secrets and identities from the
// environment, digest tuning from an optional TOML file. Everything is read
// once at startup and immutable afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	BotToken         string
	AuthorizedUserID int64

	WeatherAPIKey string
	NewsAPIKey    string
	StockAPIKey   string

	AdminAddr string

	Digest DigestConfig
}

// DigestConfig tunes the morning digest. Loaded from calliope.toml when
// present, defaults otherwise.
type DigestConfig struct {
	Location     string `toml:"location"`
	WeatherUnits string `toml:"weather_units"`

	RainThresholdPct float64 `toml:"rain_threshold_pct"`
	ColdThresholdF   float64 `toml:"cold_threshold_f"`

	NewsSources     []string `toml:"news_sources"`
	NewsTopics      []string `toml:"news_topics"`
	MaxNewsArticles int      `toml:"max_news_articles"`

	Stocks               []string `toml:"stocks"`
	StockChangeThreshold float64  `toml:"stock_change_threshold"`
}

func DefaultDigest() DigestConfig {
	return DigestConfig{
		Location:             "Santa Rosa,CA,US",
		WeatherUnits:         "imperial",
		RainThresholdPct:     30,
		ColdThresholdF:       50,
		NewsSources:          []string{"techcrunch", "ars-technica", "hacker-news", "the-verge"},
		NewsTopics:           []string{"technology", "programming", "artificial intelligence", "startups", "science"},
		MaxNewsArticles:      5,
		Stocks:               []string{"AAPL", "GOOGL", "MSFT", "TSLA", "NVDA"},
		StockChangeThreshold: 2.0,
	}
}

// Load reads configuration from the environment and, when CALLIOPE_CONFIG (or
// ./calliope.toml) exists, overlays digest settings from it. Missing
// credentials are startup errors; the caller is expected to exit on them.
func Load() (Config, error) {
	cfg := Config{
		BotToken:      env("TELEGRAM_BOT_TOKEN", ""),
		WeatherAPIKey: env("OPENWEATHER_API_KEY", ""),
		NewsAPIKey:    env("NEWS_API_KEY", ""),
		StockAPIKey:   env("STOCK_API_KEY", ""),
		AdminAddr:     env("CALLIOPE_ADMIN_ADDR", ":8081"),
		Digest:        DefaultDigest(),
	}

	if cfg.BotToken == "" {
		if path := env("TELEGRAM_BOT_TOKEN_FILE", ""); path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				return Config{}, fmt.Errorf("read token file: %w", err)
			}
			cfg.BotToken = strings.TrimSpace(string(b))
		}
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("missing TELEGRAM_BOT_TOKEN or TELEGRAM_BOT_TOKEN_FILE")
	}

	raw := env("AUTHORIZED_USER_ID", "")
	if raw == "" {
		return Config{}, errors.New("missing AUTHORIZED_USER_ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid AUTHORIZED_USER_ID: %w", err)
	}
	cfg.AuthorizedUserID = id

	if cfg.WeatherAPIKey == "" {
		return Config{}, errors.New("missing OPENWEATHER_API_KEY")
	}
	if cfg.NewsAPIKey == "" {
		return Config{}, errors.New("missing NEWS_API_KEY")
	}
	if cfg.StockAPIKey == "" {
		return Config{}, errors.New("missing STOCK_API_KEY")
	}

	path := env("CALLIOPE_CONFIG", "calliope.toml")
	if err := loadDigestFile(path, &cfg.Digest); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadDigestFile(path string, dc *DigestConfig) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, dc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func env(key, def string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
