package status

import "time"

type EventType string

const (
	EventHeartbeat  EventType = "heartbeat"
	EventProbe      EventType = "probe"
	EventCycleError EventType = "cycle_error"
)

// HeartbeatStatus is the verdict of one heartbeat cycle.
type HeartbeatStatus string

const (
	HeartbeatOnline  HeartbeatStatus = "ONLINE"
	HeartbeatOffline HeartbeatStatus = "OFFLINE"
)

// ProbeStatus is the classification of one resource-probe cycle.
type ProbeStatus string

const (
	ProbeDetected    ProbeStatus = "DETECTED"
	ProbeNotDetected ProbeStatus = "NOT_DETECTED"
	ProbeUnknown     ProbeStatus = "UNKNOWN"
)

// Event is one monitoring observation. Heartbeat is set for heartbeat
// events, Probe for probe events; Detail carries the error text for
// cycle errors and unknown probe results.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Heartbeat HeartbeatStatus
	Probe     ProbeStatus
	Detail    string
}
