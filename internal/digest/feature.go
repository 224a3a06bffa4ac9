package digest

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/config"
	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/personality"
)

var fullDigestPatterns = compile(
	`morning digest`,
	`morning routine`,
	`daily briefing`,
	`wake up`,
	`good morning`,
	`morning update`,
	`start my day`,
	`daily summary`,
	`morning brief`,
)

var (
	digestKeywords  = []string{"morning", "digest", "routine", "briefing", "weather", "news", "stocks", "wake", "daily", "update", "summary"}
	weatherKeywords = []string{"weather", "temperature", "rain", "forecast"}
	newsKeywords    = []string{"news", "headlines", "articles"}
	stockKeywords   = []string{"stocks", "market", "shares", "portfolio"}
)

var digestGreetings = []string{
	"Good morning senpai! %s Here's your daily briefing~",
	"Ohayo! %s Ready for today's digest?",
	"Morning briefing time! %s Let's see what's happening~",
	"Daily update ready! %s Time to start your day informed!",
}

var digestWrapUps = []string{
	"Have an amazing day! %s You've got this!",
	"Ready to conquer the day? %s Let's gooo!",
	"All set for today! %s Make it count!",
	"Stay awesome! %s Today's gonna be great!",
}

const (
	sectionPause = 2 * time.Second
	articlePause = 500 * time.Millisecond
)

// Feature answers briefing requests: a full digest or a single weather, news,
// or stock section, depending on the wording.
type Feature struct {
	cfg  config.DigestConfig
	agg  *Aggregator
	pers *personality.Responder
	clk  clock.Clock
	log  *zap.Logger
}

func NewFeature(cfg config.DigestConfig, agg *Aggregator, pers *personality.Responder, clk clock.Clock, log *zap.Logger) *Feature {
	return &Feature{cfg: cfg, agg: agg, pers: pers, clk: clk, log: log}
}

func (f *Feature) Name() string { return "digest" }

func (f *Feature) CanHandle(text string) bool {
	return containsAny(text, digestKeywords)
}

func (f *Feature) Handle(ctx context.Context, s *dispatch.Session, text string) {
	for _, p := range fullDigestPatterns {
		if p.MatchString(text) {
			f.full(ctx, s)
			return
		}
	}
	switch {
	case containsAny(text, weatherKeywords):
		f.weatherSection(ctx, s)
	case containsAny(text, newsKeywords):
		f.newsSection(ctx, s)
	case containsAny(text, stockKeywords):
		f.stockSection(ctx, s)
	default:
		f.sectionHelp(ctx, s)
	}
}

func (f *Feature) Help() string {
	return "*🌅 Morning Digest:*\n" +
		"• *Full digest:* \"morning digest\", \"daily briefing\"\n" +
		"• *Weather only:* \"weather update\", \"forecast\"\n" +
		"• *News only:* \"tech news\", \"daily headlines\"\n" +
		"• *Stocks only:* \"stock update\", \"market check\""
}

// full runs all three sections in order. Each section already swallows its
// own failures, so earlier errors never block later sections.
func (f *Feature) full(ctx context.Context, s *dispatch.Session) {
	s.Say(ctx, fmt.Sprintf(f.pers.Pick(digestGreetings), f.pers.Emoji()))
	f.clk.Sleep(time.Second)

	f.weatherSection(ctx, s)
	f.clk.Sleep(sectionPause)
	f.newsSection(ctx, s)
	f.clk.Sleep(sectionPause)
	f.stockSection(ctx, s)

	f.clk.Sleep(time.Second)
	s.Say(ctx, fmt.Sprintf(f.pers.Pick(digestWrapUps), f.pers.Emoji()))
}

func (f *Feature) weatherSection(ctx context.Context, s *dispatch.Session) {
	s.Say(ctx, fmt.Sprintf("Getting weather data... %s", f.pers.Emoji()))

	w, err := f.agg.Weather(ctx)
	if err != nil {
		f.log.Error("weather fetch failed", zap.Error(err))
		s.Say(ctx, fmt.Sprintf("Weather check failed! %s But every day is a good day with you!", f.pers.ErrorEmoji()))
		return
	}
	s.Say(ctx, formatWeather(f.cfg, f.pers, w))
}

func (f *Feature) newsSection(ctx context.Context, s *dispatch.Session) {
	s.Say(ctx, fmt.Sprintf("Fetching latest news... %s", f.pers.Emoji()))

	articles, err := f.agg.News(ctx)
	if err != nil {
		f.log.Error("news fetch failed", zap.Error(err))
		s.Say(ctx, fmt.Sprintf("News update failed! %s But you're always my top story!", f.pers.ErrorEmoji()))
		return
	}

	s.Say(ctx, fmt.Sprintf("📰 *Your Daily Tech Digest* %s", f.pers.Emoji()))
	for i, a := range articles {
		s.SayRaw(ctx, formatArticle(i+1, a))
		f.clk.Sleep(articlePause)
	}
	s.Say(ctx, fmt.Sprintf("Stay informed! %s", f.pers.Emoji()))
}

func (f *Feature) stockSection(ctx context.Context, s *dispatch.Session) {
	s.Say(ctx, fmt.Sprintf("Checking your portfolio... %s", f.pers.Emoji()))

	quotes, err := f.agg.Quotes(ctx)
	if err != nil {
		f.log.Error("stock fetch failed", zap.Error(err))
		s.Say(ctx, fmt.Sprintf("Stock check failed! %s But you're always a valuable investment!", f.pers.ErrorEmoji()))
		return
	}
	s.Say(ctx, formatStocks(f.cfg, f.pers, f.agg.Notable(quotes)))
}

func (f *Feature) sectionHelp(ctx context.Context, s *dispatch.Session) {
	msg := fmt.Sprintf("🌅 *Morning Digest Help* %s\n\n", f.pers.Emoji()) +
		"*What I can do:*\n" +
		"• *Full digest:* \"morning digest\", \"daily briefing\"\n" +
		fmt.Sprintf("• *Weather:* \"weather update\" for %s\n", f.cfg.Location) +
		"• *News:* \"tech news\" from your favorite sources\n" +
		"• *Stocks:* \"stock update\" for your portfolio\n\n" +
		"*Current settings:*\n" +
		fmt.Sprintf("• *Location:* %s\n", f.cfg.Location) +
		fmt.Sprintf("• *Tracking:* %d stocks\n", len(f.cfg.Stocks)) +
		fmt.Sprintf("• *News sources:* %d sources", len(f.cfg.NewsSources))
	s.Say(ctx, msg)
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
