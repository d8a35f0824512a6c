package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/angeloszaimis/uplink-monitor/internal/connectivity"
	"github.com/angeloszaimis/uplink-monitor/internal/status"
)

// Interval is the fixed heartbeat cadence.
const Interval = 5 * time.Minute

// Checker is the reachability primitive the monitor drives each cycle.
type Checker interface {
	Check(ctx context.Context) connectivity.Outcome
}

// Monitor runs the periodic liveness loop. Each cycle performs one
// reachability check and reports ONLINE or OFFLINE.
type Monitor struct {
	checker  Checker
	interval time.Duration
	events   chan<- status.Event
	logger   *slog.Logger
}

// New creates a heartbeat monitor. A non-positive interval falls back to
// the fixed default; events may be nil when no collector is attached.
func New(checker Checker, interval time.Duration, events chan<- status.Event, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = Interval
	}

	return &Monitor{
		checker:  checker,
		interval: interval,
		events:   events,
		logger:   logger,
	}
}

// Run executes the heartbeat loop until ctx is cancelled. The interval
// wait starts after each cycle completes, so the effective period is
// check latency plus the interval. A failed cycle is logged and skipped;
// it never terminates the loop.
func (m *Monitor) Run(ctx context.Context) {
	m.logger.Info("Heartbeat monitor started",
		slog.Duration("interval", m.interval))

	for {
		if ctx.Err() != nil {
			m.logger.Info("Heartbeat monitor stopped")
			return
		}

		m.cycle(ctx)

		select {
		case <-ctx.Done():
			m.logger.Info("Heartbeat monitor stopped")
			return
		case <-time.After(m.interval):
		}
	}
}

func (m *Monitor) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Heartbeat cycle failed",
				slog.Any("panic", r))
			m.publish(status.Event{
				Type:      status.EventCycleError,
				Timestamp: time.Now(),
				Detail:    fmt.Sprint(r),
			})
		}
	}()

	out := m.checker.Check(ctx)

	st := status.HeartbeatOffline
	if out.Reachable() {
		st = status.HeartbeatOnline
	}

	if st == status.HeartbeatOnline {
		m.logger.Info("Remote endpoint is reachable",
			slog.String("status", string(st)),
			slog.Int("attempts", out.Attempts))
	} else {
		m.logger.Error("Remote endpoint is unreachable",
			slog.String("status", string(st)),
			slog.Int("attempts", out.Attempts),
			slog.Any("err", out.Err))
	}

	m.publish(status.Event{
		Type:      status.EventHeartbeat,
		Timestamp: time.Now(),
		Heartbeat: st,
	})
}

func (m *Monitor) publish(ev status.Event) {
	if m.events == nil {
		return
	}

	select {
	case m.events <- ev:
	default:
	}
}
