package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/avc-dev/counselor-profiles/internal/grpcserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout   = 5 * time.Second
	healthCheckInterval = 15 * time.Second
)

// start запускает HTTP сервер и, если задан GRPC_ADDRESS, gRPC health сервер.
// Серверы останавливаются при отмене ctx с ожиданием не дольше SHUTDOWN_TIMEOUT.
func (a *App) start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	var healthServer *grpcserver.Server
	var grpcListener net.Listener
	if !a.config.GRPCAddress.IsZero() {
		listener, err := net.Listen("tcp", a.config.GRPCAddress.String())
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddress, err)
		}
		grpcListener = listener
		healthServer = grpcserver.New(a.deps.repo, healthCheckInterval, a.logger)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	if healthServer != nil {
		g.Go(func() error {
			return healthServer.Serve(gctx, grpcListener)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if healthServer != nil {
			healthServer.Shutdown(shutdownCtx)
		}
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
