// Package grpc exposes the standard gRPC health service for the vault
// server. The reported status follows database reachability.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "vault.v1.Vault"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	pinger   store.Pinger
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose health status starts as NOT_SERVING
// until the first successful database ping.
func NewHandler(services *service.Services, pinger store.Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		pinger:   pinger,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Watch pings the database every interval until ctx is done, then marks
// the server as shutting down.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check pings the database once and updates the health status.
func (h *Handler) Check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Check").Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
