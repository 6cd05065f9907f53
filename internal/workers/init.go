package workers

import (
	"context"
	"sync"
	"time"
)

type WorkersContainer struct {
	StatsWarmer  *StatisticsWarmer
	FleetMonitor *FleetMonitor

	wg sync.WaitGroup
}

// InitWorkers starts the background workers. They stop when ctx is done;
// Wait blocks until they have.
func InitWorkers(ctx context.Context, stats StatisticsRefresher, fleet FleetReloader, statsInterval, fleetInterval time.Duration) *WorkersContainer {
	c := &WorkersContainer{
		StatsWarmer:  NewStatisticsWarmer(stats, statsInterval),
		FleetMonitor: NewFleetMonitor(fleet, fleetInterval),
	}

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.StatsWarmer.Start(ctx)
	}()
	go func() {
		defer c.wg.Done()
		c.FleetMonitor.Start(ctx)
	}()
	return c
}

func (c *WorkersContainer) Wait() {
	c.wg.Wait()
}
