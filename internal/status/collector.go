package status

import (
	"context"
	"log/slog"
)

// Collector consumes monitoring events off a buffered channel and folds
// them into the tracked aggregate. The monitoring loops publish with
// non-blocking sends so a slow consumer can never stall a cycle.
type Collector struct {
	eventCh chan Event
	tracker *Tracker
	logger  *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	return &Collector{
		eventCh: make(chan Event, bufferSize),
		tracker: NewTracker(),
		logger:  logger,
	}
}

// EventChannel returns the send side of the event pipeline.
func (c *Collector) EventChannel() chan<- Event {
	return c.eventCh
}

// Publish performs a non-blocking send of ev into the pipeline. Events
// are dropped when the buffer is full.
func (c *Collector) Publish(ev Event) {
	select {
	case c.eventCh <- ev:
	default:
	}
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Status collector started")
	defer c.logger.Info("Status collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.tracker.Record(event)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.tracker.Record(event)
		default:
			return
		}
	}
}

func (c *Collector) Snapshot() Snapshot {
	return c.tracker.Snapshot()
}
