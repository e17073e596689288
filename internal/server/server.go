package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/staff-api/internal/config"
	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewAPIServer wraps the employee API handler in an http.Server configured from cfg.
func NewAPIServer(cfg config.HTTPServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// NewMonitoringHandler serves /metrics from reg and /healthz backed by a DB ping.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, db DBPinger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true, Registry: reg}))
	mux.Handle("/healthz", NewHealthChecker(db, log))

	return mux
}

// StartMonitoringServer runs the /metrics and /healthz listener until ctx is done.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
) {
	readHeaderTO := 5 * time.Second
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           NewMonitoringHandler(log, reg, db),
		ReadHeaderTimeout: readHeaderTO,
	}

	shutdownTO := 5 * time.Second
	if err := Serve(ctx, log.With(slog.String("server", "monitoring")), srv, shutdownTO); err != nil {
		log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
	}
}

// Serve runs srv until ctx is cancelled and then shuts it down gracefully within shutdownTimeout.
func Serve(ctx context.Context, log *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)

	go func() {
		log.InfoContext(ctx, "Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down HTTP server", "address", srv.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server gracefully: %w", err)
	}

	return nil
}
