package status

import (
	"sync"
	"time"
)

// Tracker is the mutex-guarded aggregate behind the collector.
type Tracker struct {
	mutex sync.RWMutex

	startTime time.Time

	heartbeatStatus      HeartbeatStatus
	heartbeatCycles      int64
	heartbeatTransitions int64
	heartbeatChangedAt   time.Time

	probeStatus ProbeStatus
	probeCycles int64
	probeDetail string

	cycleErrors int64
	lastEventAt time.Time
}

type Snapshot struct {
	Uptime      time.Duration   `json:"uptime"`
	Heartbeat   HeartbeatReport `json:"heartbeat"`
	Probe       ProbeReport     `json:"probe"`
	CycleErrors int64           `json:"cycle_errors"`
	LastEventAt time.Time       `json:"last_event_at,omitzero"`
}

type HeartbeatReport struct {
	Status      HeartbeatStatus `json:"status,omitempty"`
	Cycles      int64           `json:"cycles"`
	Transitions int64           `json:"transitions"`
	ChangedAt   time.Time       `json:"changed_at,omitzero"`
}

type ProbeReport struct {
	Status ProbeStatus `json:"status,omitempty"`
	Cycles int64       `json:"cycles"`
	Detail string      `json:"detail,omitempty"`
}

func NewTracker() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

func (t *Tracker) Record(event Event) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.lastEventAt = event.Timestamp

	switch event.Type {
	case EventHeartbeat:
		t.heartbeatCycles++
		if t.heartbeatStatus != event.Heartbeat {
			if t.heartbeatStatus != "" {
				t.heartbeatTransitions++
			}
			t.heartbeatStatus = event.Heartbeat
			t.heartbeatChangedAt = event.Timestamp
		}

	case EventProbe:
		t.probeCycles++
		t.probeStatus = event.Probe
		t.probeDetail = event.Detail

	case EventCycleError:
		t.cycleErrors++
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return Snapshot{
		Uptime: time.Since(t.startTime),
		Heartbeat: HeartbeatReport{
			Status:      t.heartbeatStatus,
			Cycles:      t.heartbeatCycles,
			Transitions: t.heartbeatTransitions,
			ChangedAt:   t.heartbeatChangedAt,
		},
		Probe: ProbeReport{
			Status: t.probeStatus,
			Cycles: t.probeCycles,
			Detail: t.probeDetail,
		},
		CycleErrors: t.cycleErrors,
		LastEventAt: t.lastEventAt,
	}
}
