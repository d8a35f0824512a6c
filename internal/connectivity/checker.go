package connectivity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultMaxRetries bounds the number of attempts per Check call.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the fixed wait between consecutive attempts.
	DefaultRetryDelay = 2 * time.Second
)

// State classifies the result of a reachability attempt.
type State int

const (
	StateReachable State = iota
	StateUnreachable
	StateTransient // transport-level failure, eligible for retry
)

func (s State) String() string {
	switch s {
	case StateReachable:
		return "REACHABLE"
	case StateUnreachable:
		return "UNREACHABLE"
	case StateTransient:
		return "TRANSIENT"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the result of a reachability attempt. Check never returns
// StateTransient: transient failures either get retried or, once attempts
// are exhausted, resolve to StateUnreachable.
type Outcome struct {
	State      State
	StatusCode int // set when the endpoint answered with a status
	Attempts   int
	Err        error
}

// Reachable reports whether the endpoint answered with a success status.
func (o Outcome) Reachable() bool {
	return o.State == StateReachable
}

// Config holds the per-checker settings. Zero values fall back to the
// package defaults.
type Config struct {
	Endpoint   string
	MaxRetries int
	RetryDelay time.Duration
}

// Checker performs bounded-retry reachability checks against a single
// HTTP endpoint. The HTTP client is injected and shared with other
// components; it must be safe for concurrent use.
type Checker struct {
	client     *http.Client
	endpoint   string
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

func New(client *http.Client, cfg Config, logger *slog.Logger) *Checker {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	return &Checker{
		client:     client,
		endpoint:   cfg.Endpoint,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}
}

// Endpoint returns the URL this checker probes.
func (c *Checker) Endpoint() string {
	return c.endpoint
}

// Check performs one bounded-retry reachability check. Only transport
// failures are retried; a response with a rejection status is returned
// immediately because the transport itself worked and the endpoint's
// answer is not considered transient. All retry state is local to the
// call, so concurrent Check invocations are independent.
func (c *Checker) Check(ctx context.Context) Outcome {
	var last Outcome

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		out := c.attempt(ctx)
		out.Attempts = attempt

		if out.State != StateTransient {
			return out
		}
		last = out

		c.logger.Warn("Reachability attempt failed",
			slog.String("endpoint", c.endpoint),
			slog.Int("attempt", attempt),
			slog.Int("max_retries", c.maxRetries),
			slog.Any("err", out.Err))

		if attempt == c.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return Outcome{State: StateUnreachable, Attempts: attempt, Err: ctx.Err()}
		case <-time.After(c.retryDelay):
		}
	}

	// Exhausted retries resolve to a plain unreachable verdict, not an
	// error: the caller decides what to do with it.
	return Outcome{State: StateUnreachable, Attempts: last.Attempts, Err: last.Err}
}

func (c *Checker) attempt(ctx context.Context) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Outcome{State: StateTransient, Err: err}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return Outcome{State: StateTransient, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 400 {
		return Outcome{State: StateReachable, StatusCode: res.StatusCode}
	}

	return Outcome{
		State:      StateUnreachable,
		StatusCode: res.StatusCode,
		Err:        fmt.Errorf("endpoint rejected request with status %d", res.StatusCode),
	}
}
