package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angeloszaimis/uplink-monitor/config"
	"github.com/angeloszaimis/uplink-monitor/internal/connectivity"
	"github.com/angeloszaimis/uplink-monitor/internal/heartbeat"
	"github.com/angeloszaimis/uplink-monitor/internal/httpserver"
	"github.com/angeloszaimis/uplink-monitor/internal/netinfo"
	"github.com/angeloszaimis/uplink-monitor/internal/probe"
	"github.com/angeloszaimis/uplink-monitor/internal/status"
	"github.com/angeloszaimis/uplink-monitor/pkg/logger"
)

const eventBufferSize = 256

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Monitor.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	netinfo.Report(log)

	client, err := newHTTPClient(cfg)
	if err != nil {
		log.Error("Failed to create HTTP client", slog.Any("err", err))
		os.Exit(1)
	}

	checker := connectivity.New(client, connectivity.Config{
		Endpoint: cfg.Connectivity.Endpoint,
	}, log)

	// One-shot startup check. Monitoring only starts when the remote
	// endpoint is reachable right now; there is no reconnect-and-retry
	// startup path.
	out := checker.Check(ctx)

	collector := status.NewCollector(eventBufferSize, log)
	collector.Start(ctx)

	hb := heartbeat.New(checker, heartbeat.Interval, collector.EventChannel(), log)
	pr := probe.New(client, cfg.Probe.Endpoint, cfg.Probe.ResourceID, probe.Interval, collector.EventChannel(), log)

	if !startMonitoring(ctx, out, hb, pr, log) {
		os.Exit(1)
	}

	srv, err := httpserver.New(cfg.StatusAPI.Address, setupRouter(collector))
	if err != nil {
		log.Error("Failed to create status API server", slog.Any("err", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error running status API server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

// startMonitoring launches the two monitoring loops when the startup
// check passed. On a failed check it reports the failure and starts
// neither loop; the branch is evaluated exactly once.
func startMonitoring(ctx context.Context, out connectivity.Outcome, hb *heartbeat.Monitor, pr *probe.Probe, log *slog.Logger) bool {
	if !out.Reachable() {
		log.Error("Startup connectivity check failed, monitoring not started",
			slog.Int("attempts", out.Attempts),
			slog.Any("err", out.Err))
		return false
	}

	log.Info("Startup connectivity check passed",
		slog.String("status", "success"),
		slog.Int("attempts", out.Attempts))

	go hb.Run(ctx)
	go pr.Run(ctx)

	return true
}

// newHTTPClient builds the shared HTTP client. The request-level timeout
// applies to every call from every component and is independent of the
// retry delay inside the connectivity checker.
func newHTTPClient(cfg *config.Config) (*http.Client, error) {
	timeout, err := time.ParseDuration(cfg.Connectivity.Timeout)
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Timeout: timeout,
	}, nil
}
