package main

import (
	"context"
	"log/slog"
	"time"

	"adpilot/internal/core/port"
)

// runScheduler calls RunCycle once at start and then on every tick until
// ctx is cancelled. Cycles never overlap: a tick that fires while a cycle
// is running is dropped by the ticker.
func runScheduler(ctx context.Context, engine port.Engine, interval time.Duration, logger *slog.Logger) {
	logger.Info("scheduler started", slog.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := engine.RunCycle(ctx, time.Now()); err != nil && ctx.Err() == nil {
			logger.Error("cycle error", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			logger.Info("scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}
