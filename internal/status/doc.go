// Package status aggregates the monitoring loops' observations into a
// queryable snapshot.
//
// It uses a channel-based event pipeline: the heartbeat monitor and the
// resource probe publish one Event per cycle with non-blocking sends, a
// dedicated collector goroutine folds them into a thread-safe aggregate,
// and an HTTP handler serves the current Snapshot as JSON.
//
// The pipeline is presentation-only. The loops never read from it, so
// their independence from each other is preserved.
//
// Example usage:
//
//	collector := status.NewCollector(256, logger)
//	collector.Start(ctx)
//
//	collector.Publish(status.Event{
//		Type:      status.EventHeartbeat,
//		Timestamp: time.Now(),
//		Heartbeat: status.HeartbeatOnline,
//	})
//
//	snapshot := collector.Snapshot()
package status
