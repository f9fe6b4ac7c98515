package firebase

import (
	"context"
	"time"

	"ecosort/internal/domain/repository"
	"ecosort/pkg/logger"
)

// Broadcaster pushes a payload to all connected dashboard clients.
type Broadcaster interface {
	Broadcast(topic string, payload interface{})
}

// TelemetryPoller periodically reads the whole "bins" node and broadcasts the
// snapshot to connected dashboards. The realtime database delivers whole-node
// snapshots, not deltas, so each tick replaces the previous frame entirely.
type TelemetryPoller struct {
	bins     repository.BinRepository
	hub      Broadcaster
	interval time.Duration
}

func NewTelemetryPoller(bins repository.BinRepository, hub Broadcaster, interval time.Duration) *TelemetryPoller {
	return &TelemetryPoller{
		bins:     bins,
		hub:      hub,
		interval: interval,
	}
}

// Start runs the poll loop until ctx is cancelled. The ticker is stopped on
// teardown so no frame is emitted after shutdown.
func (p *TelemetryPoller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				snapshot, err := p.bins.Snapshot(ctx)
				if err != nil {
					logger.Warn("Bin telemetry poll failed: %v", err)
					continue
				}
				p.hub.Broadcast("bin_snapshot", snapshot)

			case <-ctx.Done():
				return
			}
		}
	}()
}
