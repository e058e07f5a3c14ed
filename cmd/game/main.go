package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"CookieForge/internal/account"
	"CookieForge/internal/achievements"
	"CookieForge/internal/config"
	"CookieForge/internal/economy"
	"CookieForge/internal/notify"
	"CookieForge/internal/options"
	"CookieForge/internal/recorder"
	"CookieForge/internal/scheduler"
	"CookieForge/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CookieForge starting...")

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
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0o755); err != nil {
		log.Printf("[WARN] create data dir: %v", err)
	}

	// Init blob store
	var store storage.Store
	if ss, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath); err != nil {
		log.Printf("[WARN] init sqlite store failed, using memory: %v", err)
		store = storage.NewMemoryStore()
	} else {
		store = ss
	}
	defer store.Close()

	// Init recorder
	var rec recorder.Recorder
	if sr, err := recorder.NewSQLiteRecorder(cfg.Storage.HistoryPath); err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		rec = recorder.NewNoopRecorder()
	} else {
		rec = sr
		defer sr.Close()
	}

	// Init preferences
	opts := options.NewStore(store)
	opts.Load()

	// Init account repository
	accounts := account.NewRepository(store)
	if err := accounts.Load(); err != nil {
		log.Printf("[WARN] load accounts: %v", err)
	}

	// Init achievement engine with unlock notifications and history
	notifier := notify.NewConsoleNotifier(opts)
	engine := achievements.NewEngine(accounts)
	engine.OnUnlock(func(a achievements.Achievement) {
		notifier.AnnounceUnlock(a)
		if err := rec.RecordUnlock(&recorder.UnlockEvent{
			AchievementID: a.ID, Category: string(a.Category),
		}); err != nil {
			log.Printf("[ERROR] record unlock: %v", err)
		}
	})

	// Init economy core
	core := economy.NewCore(engine, accounts, rec)
	core.SetTickInterval(time.Duration(cfg.Game.TickIntervalMs) * time.Millisecond)

	// Open the session: restore the saved one, or log in the configured player.
	acct, ok := accounts.Current()
	if !ok {
		acct, _ = accounts.Login(cfg.Game.Username)
	}
	if err := rec.RecordSession(&recorder.SessionEvent{Username: acct.Username, Action: "LOGIN"}); err != nil {
		log.Printf("[ERROR] record session: %v", err)
	}
	core.LoadFromAccount(acct)

	// Init scheduler
	sched := scheduler.NewScheduler(accounts, opts, rec)
	if err := sched.RegisterAll(cfg.Schedule.AutosaveCron, cfg.Schedule.SnapshotCron); err != nil {
		log.Fatalf("[FATAL] register cron jobs: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	core.StartProduction()
	defer core.StopProduction()

	log.Printf("[INFO] CookieForge is running as %s. Press Ctrl+C to stop.", acct.Username)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	core.StopProduction()
	accounts.Flush()
	if err := rec.RecordSession(&recorder.SessionEvent{Username: acct.Username, Action: "LOGOUT"}); err != nil {
		log.Printf("[ERROR] record session: %v", err)
	}

	log.Println(notify.FormatStats(core.Stats()))
	log.Println(notify.FormatLeaderboard(accounts.Leaderboard()))
	log.Println("[INFO] CookieForge stopped")
}
