package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TradeSentinel/internal/advisor"
	"TradeSentinel/internal/broker"
	"TradeSentinel/internal/calculator"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/portfolio"
	"TradeSentinel/internal/recorder"
	"TradeSentinel/internal/runner"
	"TradeSentinel/internal/scheduler"
	"TradeSentinel/internal/strategy"
	"TradeSentinel/internal/universe"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TradeSentinel starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	log.Printf("[INFO] mode: %s", cfg.Mode)

	// Universe provider
	var uni universe.Provider
	if cfg.Universe.Source == "static" {
		uni = universe.NewStatic(cfg.Universe.Symbols)
	} else {
		uni = universe.NewKRX(cfg.Proxy)
	}
	log.Printf("[INFO] universe source: %s", uni.Name())

	// Market data
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	col := collector.NewCollector(fetcher, cfg.Data.Period, cfg.Data.Interval)
	log.Printf("[INFO] data source: %s (%s/%s)", fetcher.Name(), cfg.Data.Period, cfg.Data.Interval)

	// Brokerage
	kis := broker.NewKISClient(broker.KISConfig{
		BaseURL:     cfg.KIS.BaseURL,
		AppKey:      cfg.KIS.AppKey,
		AppSecret:   cfg.KIS.AppSecret,
		AccountNo:   cfg.KIS.AccountNo,
		ProductCode: cfg.KIS.ProductCode,
	}, cfg.Proxy)
	if cfg.Mode == "live" {
		// A failed token exchange is not fatal: live orders in the pass then
		// fail as execution failures.
		if err := kis.Authenticate(); err != nil {
			log.Printf("[WARN] kis authentication failed: %v", err)
		}
	}
	router := broker.NewRouter(model.Mode(cfg.Mode), kis, cfg.Order.Quantity)

	// Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Batch runner
	run := &runner.Runner{
		Universe:  uni,
		Collector: col,
		Calc: calculator.Config{
			MAWindow:  cfg.Indicators.MAWindow,
			BandWidth: cfg.Indicators.BandWidth,
			RSIPeriod: cfg.Indicators.RSIPeriod,
		},
		Policy: strategy.NewPolicy(strategy.Thresholds{
			OversoldRSI:    cfg.Strategy.OversoldRSI,
			OverboughtRSI:  cfg.Strategy.OverboughtRSI,
			TakeProfitMult: cfg.Strategy.TakeProfitMult,
			StopLossMult:   cfg.Strategy.StopLossMult,
		}),
		Router: router,
		Limit:  cfg.Universe.Limit,
	}
	if tn.Enabled() {
		run.Alert = func(text string) {
			if err := tn.Send(text); err != nil {
				log.Printf("[WARN] signal alert failed: %v", err)
			}
		}
	}

	// Portfolio tracker
	tracker := portfolio.NewTracker(cfg.Portfolio.InitialCapital, cfg.Portfolio.DailyProfitTarget)

	// Advisor
	adv := advisor.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scheduler
	sched := scheduler.NewScheduler(ctx, run, tracker, tn, rec, adv, cfg.Report.CSVDir)
	if err := sched.Register(cfg.Schedule.PassCron); err != nil {
		log.Fatalf("[FATAL] register pass task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Telegram command polling
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing a pass now")
		go sched.RunNow()
	}

	log.Println("[INFO] TradeSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TradeSentinel stopped")
}
