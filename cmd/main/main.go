package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Houeta/staff-api/internal/config"
	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/repository"
	"github.com/Houeta/staff-api/internal/server"
	"github.com/Houeta/staff-api/internal/services/employees"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	if cfg.Env != envLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err) //nolint:gocritic // exitAfterDefer
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, appMetrics)
	handler := server.NewEmployeeHandler(staff, logger)
	router := server.NewRouter(logger, appMetrics, handler)
	apiServer := server.NewAPIServer(cfg.HTTPServer, router)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, dtb, cfg.Monitoring.Port)
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Employee API", "address", cfg.HTTPServer.Address)
		if serveErr := server.Serve(ctx, logger, apiServer, cfg.HTTPServer.ShutdownTimeout); serveErr != nil {
			logger.ErrorContext(ctx, "Employee API failed", sl.Err(serveErr))
			stop()
		}
		logger.InfoContext(ctx, "Employee API stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{Key: "", Value: slog.Value{}}
	}
	return a
}
