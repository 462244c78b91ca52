package grpcserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName имя сервиса в протоколе grpc.health.v1
const ServiceName = "counselor.profiles"

// Pinger проверяет доступность справочника консультантов
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server gRPC сервер, отдающий только health-проверки.
// Статус ServiceName отражает доступность справочника и обновляется периодически.
type Server struct {
	server   *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *zap.Logger
}

// New создает gRPC сервер со статусом SERVING для пустого имени сервиса
func New(pinger Pinger, interval time.Duration, logger *zap.Logger) *Server {
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		server:   grpcServer,
		health:   healthServer,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Refresh один раз проверяет справочник и обновляет статус ServiceName
func (s *Server) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn("directory health check failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus(ServiceName, status)
}

// Serve принимает соединения на listener до вызова Shutdown.
// Пока ctx не отменен, статус справочника обновляется с периодом interval.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.Refresh(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()

	s.logger.Info("gRPC health server started", zap.String("address", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}

	return nil
}

// Shutdown переводит все сервисы в NOT_SERVING и останавливает сервер.
// Если ctx истекает раньше завершения активных вызовов, сервер останавливается принудительно.
func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
}
