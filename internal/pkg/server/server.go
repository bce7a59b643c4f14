package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	shutdown        *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, host string, port int, shutdownTimeout time.Duration, sm *ShutdownManager) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
		shutdown:        sm,
	}
}

// Start serves until SIGINT/SIGTERM, then shuts the server and registered components down
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("HTTP server failed", logger.Err(err))
		_ = s.Shutdown()
		return err
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, then runs the registered cleanup functions
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	if s.shutdown != nil {
		s.shutdown.Shutdown(ctx)
	}

	logger.Info("Server shutdown completed")
	return err
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	functions []namedCleanup
}

type namedCleanup struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.functions = append(sm.functions, namedCleanup{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions, continuing past failures
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	failed := 0
	for i := len(sm.functions) - 1; i >= 0; i-- {
		c := sm.functions[i]
		if err := c.fn(ctx); err != nil {
			failed++
			logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
		}
	}

	logger.Info("All components shutdown completed", logger.Int("failed", failed))
	return failed
}
