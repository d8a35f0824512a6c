package heartbeat_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/uplink-monitor/internal/connectivity"
	"github.com/angeloszaimis/uplink-monitor/internal/heartbeat"
	"github.com/angeloszaimis/uplink-monitor/internal/status"
)

func TestHeartbeat(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Heartbeat Suite")
}

// scriptedChecker plays back a fixed sequence of outcomes, repeating the
// last one once the script runs out. A step may panic instead to test
// cycle recovery.
type step struct {
	outcome connectivity.Outcome
	panics  bool
}

type scriptedChecker struct {
	mu    sync.Mutex
	steps []step
	calls int
}

func (c *scriptedChecker) Check(context.Context) connectivity.Outcome {
	c.mu.Lock()
	c.calls++
	i := c.calls - 1
	if i >= len(c.steps) {
		i = len(c.steps) - 1
	}
	s := c.steps[i]
	c.mu.Unlock()

	if s.panics {
		panic("injected cycle failure")
	}
	return s.outcome
}

func (c *scriptedChecker) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func reachable() connectivity.Outcome {
	return connectivity.Outcome{State: connectivity.StateReachable, Attempts: 1}
}

func unreachable() connectivity.Outcome {
	return connectivity.Outcome{
		State:    connectivity.StateUnreachable,
		Attempts: 3,
		Err:      errors.New("dial tcp: connection refused"),
	}
}

var _ = Describe("Monitor", func() {
	var (
		log    *slog.Logger
		events chan status.Event
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(os.Stdout, nil))
		events = make(chan status.Event, 16)
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
	})

	It("emits one status event per cycle, in outcome order", func() {
		checker := &scriptedChecker{steps: []step{
			{outcome: reachable()},
			{outcome: unreachable()},
			{outcome: reachable()},
		}}
		monitor := heartbeat.New(checker, 20*time.Millisecond, events, log)

		go monitor.Run(ctx)

		var got []status.HeartbeatStatus
		for len(got) < 3 {
			var ev status.Event
			Eventually(events, time.Second).Should(Receive(&ev))
			Expect(ev.Type).To(Equal(status.EventHeartbeat))
			got = append(got, ev.Heartbeat)
		}

		Expect(got).To(Equal([]status.HeartbeatStatus{
			status.HeartbeatOnline,
			status.HeartbeatOffline,
			status.HeartbeatOnline,
		}))
	})

	It("survives a panicking cycle and keeps ticking", func() {
		checker := &scriptedChecker{steps: []step{
			{outcome: reachable()},
			{panics: true},
			{outcome: reachable()},
		}}
		monitor := heartbeat.New(checker, 20*time.Millisecond, events, log)

		go monitor.Run(ctx)

		var first, second, third status.Event
		Eventually(events, time.Second).Should(Receive(&first))
		Eventually(events, time.Second).Should(Receive(&second))
		Eventually(events, time.Second).Should(Receive(&third))

		Expect(first.Type).To(Equal(status.EventHeartbeat))
		Expect(first.Heartbeat).To(Equal(status.HeartbeatOnline))

		Expect(second.Type).To(Equal(status.EventCycleError))
		Expect(second.Detail).To(ContainSubstring("injected cycle failure"))

		Expect(third.Type).To(Equal(status.EventHeartbeat))
		Expect(third.Heartbeat).To(Equal(status.HeartbeatOnline))
	})

	It("stops checking once the context is cancelled", func() {
		checker := &scriptedChecker{steps: []step{{outcome: reachable()}}}
		monitor := heartbeat.New(checker, 20*time.Millisecond, events, log)

		go monitor.Run(ctx)

		Eventually(checker.callCount, time.Second).Should(BeNumerically(">=", 2))
		cancel()

		time.Sleep(50 * time.Millisecond)
		settled := checker.callCount()
		Consistently(checker.callCount, 100*time.Millisecond).Should(Equal(settled))
	})

	It("runs without an event channel attached", func() {
		checker := &scriptedChecker{steps: []step{{outcome: reachable()}}}
		monitor := heartbeat.New(checker, 20*time.Millisecond, nil, log)

		go monitor.Run(ctx)

		Eventually(checker.callCount, time.Second).Should(BeNumerically(">=", 2))
	})
})
