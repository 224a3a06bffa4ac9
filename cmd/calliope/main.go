package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eliasnika/calliope/internal/admin"
	"github.com/eliasnika/calliope/internal/config"
	"github.com/eliasnika/calliope/internal/digest"
	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/eggs"
	"github.com/eliasnika/calliope/internal/feeds"
	"github.com/eliasnika/calliope/internal/personality"
	"github.com/eliasnika/calliope/internal/support"
	"github.com/eliasnika/calliope/internal/telegram"
	"github.com/eliasnika/calliope/internal/timer"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("bot init", zap.Error(err))
	}
	bot.Debug = false
	log.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	pers := personality.New(rand.New(rand.NewSource(time.Now().UnixNano())))

	sender := telegram.NewSender(bot, cfg.AuthorizedUserID)
	sess := dispatch.NewSession(cfg.AuthorizedUserID, sender, clk, log)

	httpClient := &http.Client{Timeout: 10 * time.Second}
	agg := digest.NewAggregator(cfg.Digest,
		feeds.NewOpenWeather(cfg.WeatherAPIKey, cfg.Digest.WeatherUnits, httpClient, log),
		feeds.NewNewsAPI(cfg.NewsAPIKey, httpClient, clk, log),
		feeds.NewAlphaVantage(cfg.StockAPIKey, httpClient, log),
		clk, log)

	scripts := support.NewScripts(pers, log)
	engine := timer.NewEngine(clk)

	features := append(
		scripts.Features(),
		timer.NewFeature(engine, pers, sess, log),
		eggs.NewFeature(pers, log),
		digest.NewFeature(cfg.Digest, agg, pers, clk, log),
	)
	disp := dispatch.New(pers, log, features...)

	adminSrv := &http.Server{
		Addr:              cfg.AdminAddr,
		Handler:           admin.NewServer(admin.SessionNotifier{Sess: sess}, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return telegram.New(bot, cfg.AuthorizedUserID, disp, sess, pers, log).Run(ctx)
	})
	g.Go(func() error {
		log.Info("admin listening", zap.String("addr", cfg.AdminAddr))
		if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return adminSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("runtime", zap.Error(err))
	}
	log.Info("shut down cleanly")
}
