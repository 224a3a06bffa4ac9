// Package digest assembles the on-demand morning briefing: current weather,
// a handful of news headlines, and tracked stock quotes. The three sections
// fetch independently; one feed failing never suppresses the others.
package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/config"
)

// ErrNoLocation reports that a geocoding lookup found no match for the
// queried place name.
var ErrNoLocation = errors.New("digest: location not found")

// Weather is one current-conditions reading. Temperatures are in the
// configured units (imperial by default).
type Weather struct {
	City        string
	Temp        float64
	FeelsLike   float64
	Humidity    int
	Description string
	// RainPct is a rough precipitation likelihood in percent.
	RainPct float64
}

// Article is one usable news item: non-empty title and URL.
type Article struct {
	Title  string
	Source string
	URL    string
}

// NewsQuery is one search attempt against the news provider.
type NewsQuery struct {
	Sources  []string
	Query    string
	FromDays int
	PageSize int
}

// Quote is one stock quote snapshot.
type Quote struct {
	Symbol    string
	Price     float64
	Change    float64
	ChangePct float64
}

// WeatherProvider resolves one location query to current conditions.
// Implementations return ErrNoLocation when the place name does not geocode.
type WeatherProvider interface {
	Current(ctx context.Context, location string) (Weather, error)
}

// NewsProvider runs one search query and returns raw results, placeholders
// included; the aggregator filters.
type NewsProvider interface {
	Search(ctx context.Context, q NewsQuery) ([]Article, error)
}

// StockProvider fetches one quote per call.
type StockProvider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// quotePause spaces out consecutive quote requests.
const quotePause = 200 * time.Millisecond

// Aggregator runs the three feed fetches with their retry and filter rules.
type Aggregator struct {
	cfg     config.DigestConfig
	weather WeatherProvider
	news    NewsProvider
	stocks  StockProvider
	clk     clock.Clock
	log     *zap.Logger
}

func NewAggregator(cfg config.DigestConfig, w WeatherProvider, n NewsProvider, s StockProvider, clk clock.Clock, log *zap.Logger) *Aggregator {
	return &Aggregator{cfg: cfg, weather: w, news: n, stocks: s, clk: clk, log: log}
}

// locationCandidates builds the fixed fallback order of place-name spellings
// tried against the geocoder. The configured string comes first, then
// progressively looser variants down to the bare city name.
func locationCandidates(location string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	add(location)
	add(strings.ReplaceAll(location, ", ", ","))
	add(strings.ReplaceAll(location, ",CA,", ",California,"))

	parts := strings.Split(strings.ReplaceAll(location, ", ", ","), ",")
	if len(parts) >= 2 {
		add(strings.Join(parts[:2], ","))
	}
	add(parts[0])
	return out
}

// Weather tries each location candidate in order and stops at the first that
// geocodes. All candidates failing fails the whole fetch.
func (a *Aggregator) Weather(ctx context.Context) (Weather, error) {
	var lastErr error
	for _, loc := range locationCandidates(a.cfg.Location) {
		w, err := a.weather.Current(ctx, loc)
		if err == nil {
			a.log.Debug("weather resolved", zap.String("query", loc), zap.String("city", w.City))
			return w, nil
		}
		a.log.Debug("weather candidate failed", zap.String("query", loc), zap.Error(err))
		lastErr = err
	}
	return Weather{}, fmt.Errorf("weather: all location candidates failed: %w", lastErr)
}

// newsStrategies is the progressively broader query ladder: curated sources
// first, then the lead topic keyword, then a generic search.
func (a *Aggregator) newsStrategies() []NewsQuery {
	strategies := []NewsQuery{
		{Sources: a.cfg.NewsSources, FromDays: 7, PageSize: 20},
	}
	if len(a.cfg.NewsTopics) > 0 {
		strategies = append(strategies, NewsQuery{Query: a.cfg.NewsTopics[0], FromDays: 3, PageSize: 20})
	}
	return append(strategies, NewsQuery{Query: "tech", FromDays: 7, PageSize: 20})
}

// News walks the query ladder and accepts the first strategy yielding at
// least one usable article, capped at the configured maximum.
func (a *Aggregator) News(ctx context.Context) ([]Article, error) {
	var lastErr error
	for i, q := range a.newsStrategies() {
		raw, err := a.news.Search(ctx, q)
		if err != nil {
			a.log.Debug("news strategy failed", zap.Int("strategy", i+1), zap.Error(err))
			lastErr = err
			continue
		}

		var usable []Article
		for _, art := range raw {
			if !usableArticle(art) {
				continue
			}
			usable = append(usable, art)
			if len(usable) == a.cfg.MaxNewsArticles {
				break
			}
		}
		if len(usable) > 0 {
			a.log.Debug("news strategy succeeded", zap.Int("strategy", i+1), zap.Int("articles", len(usable)))
			return usable, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("news: all query strategies failed: %w", lastErr)
	}
	return nil, errors.New("news: no usable articles found")
}

func usableArticle(a Article) bool {
	return a.Title != "" && a.URL != "" && a.Title != "[Removed]"
}

// Quotes fetches every tracked symbol, pausing between requests. Per-symbol
// failures are skipped; the fetch fails only when nothing came back at all.
func (a *Aggregator) Quotes(ctx context.Context) ([]Quote, error) {
	var out []Quote
	for i, sym := range a.cfg.Stocks {
		if i > 0 {
			a.clk.Sleep(quotePause)
		}
		q, err := a.stocks.Quote(ctx, sym)
		if err != nil {
			a.log.Warn("quote fetch failed", zap.String("symbol", sym), zap.Error(err))
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, errors.New("stocks: no quotes available")
	}
	return out, nil
}

// Notable filters quotes to those whose absolute percent change meets the
// configured threshold.
func (a *Aggregator) Notable(quotes []Quote) []Quote {
	var out []Quote
	for _, q := range quotes {
		if q.ChangePct >= a.cfg.StockChangeThreshold || q.ChangePct <= -a.cfg.StockChangeThreshold {
			out = append(out, q)
		}
	}
	return out
}
