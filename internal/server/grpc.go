package server

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServiceName is the gRPC health service name reported alongside "".
const HealthServiceName = "resumesite"

// HealthServer exposes grpc.health.v1 for orchestrators that probe over gRPC.
// Status follows store reachability.
type HealthServer struct {
	grpc     *grpc.Server
	health   *health.Server
	store    ResumeStore
	interval time.Duration
	logger   *slog.Logger
}

func NewHealthServer(store ResumeStore, interval time.Duration, logger *slog.Logger) *HealthServer {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	return &HealthServer{grpc: gs, health: hs, store: store, interval: interval, logger: logger}
}

// Refresh pings the store once and updates the serving status.
func (h *HealthServer) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("grpc.health.store_unavailable", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(HealthServiceName, status)
	return status
}

// Serve blocks serving on lis until ctx is done, refreshing status on an interval.
func (h *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	h.Refresh(ctx)
	go func() {
		t := time.NewTicker(h.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				h.health.Shutdown()
				h.grpc.GracefulStop()
				return
			case <-t.C:
				h.Refresh(ctx)
			}
		}
	}()

	h.logger.Info("grpc health server listening", "addr", lis.Addr().String())
	return h.grpc.Serve(lis)
}

// Check answers a health request in-process.
func (h *HealthServer) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
