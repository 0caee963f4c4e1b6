package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/betsuggest/internal/config"
	"github.com/betbot/betsuggest/internal/scores"
	"github.com/betbot/betsuggest/internal/server"
	"github.com/betbot/betsuggest/internal/suggest"
	"github.com/betbot/betsuggest/internal/taxonomy"
	"github.com/betbot/betsuggest/internal/webhook"
	"github.com/betbot/betsuggest/pkg/logger"
)

func main() {
	// Load .env (best-effort). If missing, fall back to real env vars.
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("BETSUGGEST_CONFIG"), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	scoresClient := scores.NewClient(scores.Config{
		GamesBaseURL: cfg.GamesBaseURL,
		LinesBaseURL: cfg.LinesBaseURL,
		InitBaseURL:  cfg.InitBaseURL,
	})

	// The taxonomy must be in place before any handler runs; a failed load
	// aborts startup entirely.
	cache := taxonomy.NewCache(scoresClient)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := cache.Load(loadCtx, cfg.Lang); err != nil {
		cancelLoad()
		logger.Fatalf("taxonomy load failed, refusing to start: %v", err)
	}
	cancelLoad()

	dispatcher := webhook.NewDispatcher(cfg.WebhookURL, cfg.AgentWebhookURL)

	svc := suggest.NewService(scoresClient, cache, dispatcher, suggest.Config{
		MaxGames:           cfg.MaxGames,
		FanoutLimit:        cfg.FanoutLimit,
		RecommendedGames:   cfg.RecommendedGames,
		RecommendedMarkets: cfg.RecommendedMarkets,
	})

	srv, err := server.New(server.Config{Suggestions: svc})
	if err != nil {
		logger.Fatalf("init server failed: %v", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("betsuggest listening on %s", cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("http server error: %v", err)
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	<-stopCh

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)

	logger.Info("server stopped")
}
