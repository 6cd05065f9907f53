package workers

import (
	"context"
	"time"

	"infinite-experiment/routeplanner/internal/logging"
)

type FleetReloader interface {
	Reload(ctx context.Context) error
}

// FleetMonitor reloads the in-memory fleet periodically, picking up rows
// edited in the database by other tools.
type FleetMonitor struct {
	fleet    FleetReloader
	interval time.Duration
}

func NewFleetMonitor(fleet FleetReloader, interval time.Duration) *FleetMonitor {
	return &FleetMonitor{fleet: fleet, interval: interval}
}

// Start blocks until ctx is done. A zero interval returns at once.
func (m *FleetMonitor) Start(ctx context.Context) {
	if m.interval <= 0 {
		logging.Info("Fleet monitor disabled")
		return
	}
	logging.Info("Starting fleet monitor", "interval", m.interval.String())

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Fleet monitor shutting down")
			return
		case <-ticker.C:
			if err := m.fleet.Reload(ctx); err != nil && ctx.Err() == nil {
				logging.Warn("Fleet reload failed, keeping previous snapshot", "error", err)
			}
		}
	}
}
