// Package scheduler provides a ticker-backed recurring job driver.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"NewsAggregator/internal/ports"
)

// TickerScheduler fires a job at a fixed interval, running it once
// immediately on start.
type TickerScheduler struct {
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
}

var _ ports.Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(interval time.Duration, logger *slog.Logger) *TickerScheduler {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &TickerScheduler{
		interval: interval,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start begins ticking; a second call while running is a no-op.
func (t *TickerScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}
	if t.stop != nil {
		return nil
	}

	t.stop = make(chan struct{})
	t.logger.Info("scheduler started", "interval", t.interval)

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		job(time.Now())
		for {
			select {
			case tick := <-ticker.C:
				job(tick)
			case <-ctx.Done():
				return
			case <-t.stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (t *TickerScheduler) Stop(ctx context.Context) error {
	if t.stop == nil {
		return nil
	}
	close(t.stop)
	t.stop = nil
	t.logger.Info("scheduler stopped")
	return nil
}
