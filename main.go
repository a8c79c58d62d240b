package main

import (
	"context"
	"log"

	api "household-backend/cmd/api"
	"household-backend/internal/dailystatus"
	"household-backend/internal/store"
	"household-backend/internal/task/scheduler"
	"household-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize key-value store
	kv, err := store.Open(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer kv.Close()

	ctx := context.Background()
	clock := dailystatus.SystemClock(cfg.Location)

	// Day watcher logs the schedule reset at local midnight
	watcher := scheduler.NewDayWatcher(clock, cfg.DayWatchInterval)
	watcher.OnRollover(func(previous, current dailystatus.DateKey) {
		log.Printf("[DayWatcher] New day %s; tasks from %s kept as history", current, previous)
	})
	watcher.Start()
	defer watcher.Stop()

	handler, err := api.NewHandler(ctx, cfg, kv, clock, api.NewSender(ctx, cfg))
	if err != nil {
		log.Fatal("Failed to initialize handlers: ", err)
	}

	log.Printf("Server starting on port %s (store: %s, timezone: %s)", cfg.Port, cfg.DBDriver, cfg.Location)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
