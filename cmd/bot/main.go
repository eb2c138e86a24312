package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"VolScout/internal/calculator"
	"VolScout/internal/collector"
	"VolScout/internal/config"
	"VolScout/internal/logging"
	"VolScout/internal/notifier"
	"VolScout/internal/scheduler"
	"VolScout/internal/strategy"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logging.New(true).Fatal("load config", zap.Error(err))
	}

	log := logging.New(cfg.Log.Development)
	defer log.Sync()
	log.Info("VolScout starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal("config validation", zap.Error(err))
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info("data source selected", zap.String("source", fetcher.Name()))

	// Init collector and analysis engine
	col := collector.NewCollector(fetcher, cfg, log)
	coeffs := calculator.Coefficients{Omega: cfg.Garch.Omega, Alpha: cfg.Garch.Alpha, Beta: cfg.Garch.Beta}
	thresholds := strategy.Thresholds{Good: cfg.Thresholds.Good, Moderate: cfg.Thresholds.Moderate}
	eng := strategy.NewEngine(coeffs, thresholds, log)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One-shot mode: run the analysis once and exit.
	if cfg.Schedule.DailyCron == "" {
		sched := scheduler.NewScheduler(ctx, col, eng, nil, os.Stdout, log)
		if err := sched.RunNow(ctx); err != nil {
			log.Fatal("analysis run failed", zap.Error(err))
		}
		return
	}

	// Daemon mode: daily cron plus Telegram delivery and commands.
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
	sched := scheduler.NewScheduler(ctx, col, eng, tn, os.Stdout, log)
	if err := sched.RegisterDaily(cfg.Schedule.DailyCron); err != nil {
		log.Fatal("register cron task", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info("telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, executing analysis now")
		go func() {
			if err := sched.RunNow(ctx); err != nil {
				log.Error("startup analysis failed", zap.Error(err))
			}
		}()
	}

	log.Info("VolScout is running, press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping")
	cancel()
	log.Info("VolScout stopped")
}
