package digest

import (
	"fmt"
	"strings"

	"github.com/eliasnika/calliope/internal/config"
	"github.com/eliasnika/calliope/internal/personality"
)

const (
	maxTitleLen  = 100
	hotThreshold = 80
)

func unitSuffix(cfg config.DigestConfig) string {
	if cfg.WeatherUnits == "metric" {
		return "°C"
	}
	return "°F"
}

// formatWeather renders the conditions block plus any recommendations the
// thresholds trigger.
func formatWeather(cfg config.DigestConfig, pers *personality.Responder, w Weather) string {
	unit := unitSuffix(cfg)

	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ *Weather in %s*\n", cfg.Location)
	fmt.Fprintf(&b, "• *%.0f%s* (feels like %.0f%s)\n", w.Temp, unit, w.FeelsLike, unit)
	fmt.Fprintf(&b, "• *%s*\n", w.Description)
	fmt.Fprintf(&b, "• *Humidity:* %d%%", w.Humidity)

	var recs []string
	if w.RainPct > cfg.RainThresholdPct {
		recs = append(recs, fmt.Sprintf("☔ Bring an umbrella! ~%.0f%% chance of rain", w.RainPct))
	}
	if w.Temp < cfg.ColdThresholdF {
		recs = append(recs, "🧥 Grab a jacket! It's chilly today")
	}
	if w.Temp > hotThreshold {
		recs = append(recs, "🌞 Perfect weather! Maybe shorts today?")
	}
	if len(recs) > 0 {
		b.WriteString("\n\n*Recommendations:*")
		for _, r := range recs {
			b.WriteString("\n• ")
			b.WriteString(r)
		}
	}

	fmt.Fprintf(&b, "\n\nHave a great day out there! %s", pers.WeatherEmoji(w.Temp))
	return b.String()
}

// formatArticle renders one numbered headline message. Long titles are
// clipped to keep link previews tidy; the limit counts characters, so
// multi-byte headlines are never cut mid-rune.
func formatArticle(n int, a Article) string {
	title := a.Title
	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen-3]) + "..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%d.* %s\n", n, title)
	fmt.Fprintf(&b, "_Source: %s_", a.Source)
	if a.URL != "" {
		b.WriteString("\n")
		b.WriteString(a.URL)
	}
	return b.String()
}

// formatStocks renders the portfolio block: only movers past the threshold,
// or a steady-day line when nothing moved.
func formatStocks(cfg config.DigestConfig, pers *personality.Responder, notable []Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📈 *Your Portfolio Check* %s\n\n", pers.Emoji())

	if len(notable) == 0 {
		fmt.Fprintf(&b, "All stocks stable today! %s Steady as you go!", pers.Emoji())
	} else {
		for _, q := range notable {
			arrow := "📈"
			if q.Change < 0 {
				arrow = "📉"
			}
			fmt.Fprintf(&b, "%s *%s*: $%.2f (%+.2f, %+.1f%%)\n", arrow, q.Symbol, q.Price, q.Change, q.ChangePct)
		}
		fmt.Fprintf(&b, "\n_Only showing changes > %.1f%%_", cfg.StockChangeThreshold)
	}

	fmt.Fprintf(&b, "\n\nKeep investing in yourself! %s", pers.Emoji())
	return b.String()
}
