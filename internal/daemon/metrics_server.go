package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"sweeparr/internal/config"
	"sweeparr/internal/logging"
	"sweeparr/internal/metrics"
)

// metricsServer serves the Prometheus endpoint when metrics.listen is set.
type metricsServer struct {
	bind   string
	logger *slog.Logger

	listener net.Listener
	server   *http.Server
}

func newMetricsServer(cfg *config.Config, collector *metrics.Collector, logger *slog.Logger) (*metricsServer, error) {
	if cfg == nil || collector == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Metrics.Listen)
	if bind == "" {
		return nil, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	return &metricsServer{
		bind:   bind,
		logger: logger,
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

func (s *metricsServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("metrics listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("metrics endpoint listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *metricsServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *metricsServer) addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
