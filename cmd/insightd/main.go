package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"FinSentinel/internal/config"
	"FinSentinel/internal/engine"
	"FinSentinel/internal/inbox"
	"FinSentinel/internal/notifier"
	"FinSentinel/internal/recorder"
	"FinSentinel/internal/scheduler"
	"FinSentinel/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] FinSentinel starting...")

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

	// Init ledger store
	var st store.Store
	if cfg.Database.LedgerPath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.LedgerPath)
		if err != nil {
			log.Fatalf("[FATAL] open ledger: %v", err)
		}
		st = ss
		defer ss.Close()
	} else {
		st = store.NewMemoryStore()
		log.Println("[WARN] no ledger path configured, using empty in-memory store")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.HistoryPath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.HistoryPath)
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

	// Init notifier
	var nt notifier.Notifier
	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL != "" {
		nt = notifier.NewWebhookNotifier(cfg.Notifications.WebhookURL, cfg.Notifications.AuthToken)
		log.Printf("[INFO] notifications enabled via webhook")
	} else {
		nt = notifier.NewNoopNotifier()
	}

	// Init inbox
	ib, err := inbox.NewManager(cfg.Inbox.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init inbox: %v", err)
	}

	// Init engine
	eng := engine.New(st, rec, nt, ib, engine.Options{
		WindowDays:           cfg.Analysis.WindowDays,
		CadenceGate:          cfg.Analysis.CadenceGate,
		CooldownWindow:       cfg.Analysis.CooldownWindow,
		PeriodStartDay:       cfg.Analysis.PeriodStartDay,
		NotificationsEnabled: cfg.Notifications.Enabled,
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, eng)
	if err := sched.RegisterAll(cfg.Analysis.Interval, cfg.Analysis.PeriodStartDay); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, running analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] FinSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] FinSentinel stopped")
}
