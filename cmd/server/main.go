package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"church-treasury/internal/config"
	"church-treasury/internal/handlers"
	"church-treasury/internal/middleware"
	"church-treasury/internal/repositories"
	"church-treasury/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := newLogger(cfg.Server.LogFormat)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	transactionRepo := repositories.NewTransactionRepository()
	chequeRepo := repositories.NewChequeRepository()
	movementRepo := repositories.NewFundMovementRepository()

	metrics := services.NewPrometheusMetrics()
	aggregator := services.NewTransactionAggregator()

	ledgerService := services.NewLedgerService(transactionRepo, aggregator, metrics, cfg.Ledger.DefaultYearScope, logger)
	reportService := services.NewReportService(transactionRepo, aggregator, metrics, cfg.Report.DefaultYearScope, cfg.Report.AvailableYears, logger)
	chequeService := services.NewChequeService(chequeRepo, metrics, logger)
	fundService := services.NewFundService(movementRepo, aggregator, metrics, logger)
	exportService := services.NewExportService(metrics)
	seeder := services.NewSampleDataSeeder(services.NewSampleDataGenerator(), transactionRepo, chequeRepo, movementRepo)

	if cfg.Seed.Enabled {
		if err := seeder.Seed(time.Now(), cfg.Seed.Months); err != nil {
			logger.Error("Failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rateLimiter := middleware.NewIPRateLimiter(
		float64(cfg.Security.RateLimitPerSecond),
		cfg.Security.RateLimitBurst,
		"/health", "/metrics",
	)
	go rateLimiter.Run(ctx)

	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(rateLimiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	h := handlers.Handlers{
		Health:       handlers.NewHealthCheckHandler(transactionRepo, chequeRepo, movementRepo, metrics),
		Transactions: handlers.NewTransactionHandler(ledgerService, exportService),
		Reports:      handlers.NewReportHandler(reportService, exportService),
		Cheques:      handlers.NewChequeHandler(chequeService),
		Fund:         handlers.NewFundHandler(fundService),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(seeder, transactionRepo, chequeRepo, movementRepo)
	}
	handlers.RegisterRoutes(e, h)

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           e,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting church treasury server",
		"address", srv.Addr,
		"environment", cfg.Server.Environment,
		"ledger_year_scope", cfg.Ledger.DefaultYearScope,
		"report_year_scope", cfg.Report.DefaultYearScope,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err, "address", srv.Addr)
		os.Exit(1)
	}

	<-done
	logger.Info("Server stopped gracefully")
}

func newLogger(format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(os.Getenv("LOG_LEVEL"))}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func logLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}
