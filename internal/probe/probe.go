package probe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/angeloszaimis/uplink-monitor/internal/status"
)

// Interval is the fixed probe cadence.
const Interval = 10 * time.Second

// Probe runs the short-interval resource check. Each cycle issues one
// single-shot GET (no retry wrapper) against the resource URL and
// classifies the response.
type Probe struct {
	client   *http.Client
	url      string
	interval time.Duration
	events   chan<- status.Event
	logger   *slog.Logger
}

// New creates a resource probe for endpoint/resourceID. A non-positive
// interval falls back to the fixed default; events may be nil when no
// collector is attached.
func New(client *http.Client, endpoint, resourceID string, interval time.Duration, events chan<- status.Event, logger *slog.Logger) *Probe {
	if interval <= 0 {
		interval = Interval
	}

	return &Probe{
		client:   client,
		url:      endpoint + "/" + url.PathEscape(resourceID),
		interval: interval,
		events:   events,
		logger:   logger,
	}
}

// URL returns the fully resolved resource URL this probe checks.
func (p *Probe) URL() string {
	return p.url
}

// Run executes the probe loop until ctx is cancelled. Same resilience
// contract as the heartbeat loop: a failed cycle is logged and skipped,
// never fatal.
func (p *Probe) Run(ctx context.Context) {
	p.logger.Info("Resource probe started",
		slog.String("url", p.url),
		slog.Duration("interval", p.interval))

	for {
		if ctx.Err() != nil {
			p.logger.Info("Resource probe stopped")
			return
		}

		p.cycle(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("Resource probe stopped")
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *Probe) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Probe cycle failed",
				slog.Any("panic", r))
			p.publish(status.Event{
				Type:      status.EventCycleError,
				Timestamp: time.Now(),
				Detail:    fmt.Sprint(r),
			})
		}
	}()

	st, detail := p.Check(ctx)

	switch st {
	case status.ProbeDetected:
		p.logger.Warn("Resource detected",
			slog.String("status", string(st)))
	case status.ProbeNotDetected:
		p.logger.Info("Resource not detected",
			slog.String("status", string(st)))
	default:
		p.logger.Warn("Resource state unknown",
			slog.String("status", string(st)),
			slog.String("detail", detail))
	}

	p.publish(status.Event{
		Type:      status.EventProbe,
		Timestamp: time.Now(),
		Probe:     st,
		Detail:    detail,
	})
}

// Check performs one single-shot classification of the resource URL.
// Any success status counts as detected, 404 as not detected, and
// everything else (other statuses, transport faults) as unknown.
func (p *Probe) Check(ctx context.Context) (status.ProbeStatus, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return status.ProbeUnknown, err.Error()
	}

	res, err := p.client.Do(req)
	if err != nil {
		return status.ProbeUnknown, err.Error()
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return status.ProbeDetected, ""
	case res.StatusCode == http.StatusNotFound:
		return status.ProbeNotDetected, ""
	default:
		return status.ProbeUnknown, fmt.Sprintf("unexpected status %d", res.StatusCode)
	}
}

func (p *Probe) publish(ev status.Event) {
	if p.events == nil {
		return
	}

	select {
	case p.events <- ev:
	default:
	}
}
