package workers

import (
	"context"
	"time"

	"infinite-experiment/routeplanner/internal/logging"
)

// StatisticsRefresher is the part of the statistics service the warmer
// needs.
type StatisticsRefresher interface {
	Refresh(ctx context.Context) error
}

// StatisticsWarmer recomputes the cached statistics on a fixed interval.
type StatisticsWarmer struct {
	stats    StatisticsRefresher
	interval time.Duration
}

func NewStatisticsWarmer(stats StatisticsRefresher, interval time.Duration) *StatisticsWarmer {
	return &StatisticsWarmer{stats: stats, interval: interval}
}

// Start blocks until ctx is done. A zero interval returns at once.
func (w *StatisticsWarmer) Start(ctx context.Context) {
	if w.interval <= 0 {
		logging.Info("Statistics warmer disabled")
		return
	}
	logging.Info("Starting statistics warmer", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start
	w.warm(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Statistics warmer shutting down")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *StatisticsWarmer) warm(ctx context.Context) {
	start := time.Now()
	if err := w.stats.Refresh(ctx); err != nil {
		if ctx.Err() == nil {
			logging.Error("Failed to refresh statistics", "error", err)
		}
		return
	}
	logging.Debug("Statistics refreshed", "duration_ms", time.Since(start).Milliseconds())
}
