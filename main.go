package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"scorecast/internal/config"
	"scorecast/internal/regression"
	"scorecast/internal/report"
	"scorecast/internal/repository"
	"scorecast/internal/server"
	"scorecast/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Fit the regression model once; it is read-only for the rest of the
	// process lifetime.
	model, err := regression.Fit(regression.DefaultSamples())
	if err != nil {
		logger.Fatal("Failed to fit regression model", zap.Error(err))
	}
	intercept, weights := model.Coefficients()
	logger.Info("Regression model fitted",
		zap.Float64("intercept", intercept),
		zap.Float64s("weights", weights[:]))

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Lead store selection; a missing service account degrades to an
	// unavailable store instead of stopping the application.
	store := newLeadStore(ctx, cfg, logger)

	sessions := service.NewSessionStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	predictor := service.NewPredictionService(model, sessions, logger)
	authService := service.NewAuthService(cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, logger)
	generator := report.NewGenerator(cfg.Report.BannerPath, logger)

	srv := server.NewServer(predictor, authService, store, generator, logger)
	go func() {
		if err := srv.Run(":" + cfg.Server.Port); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Application stopped.")
}

func newLeadStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) repository.LeadStore {
	switch cfg.Store.Type {
	case "sqlite":
		store, err := repository.NewSQLiteStore(cfg.Store.SQLitePath, logger)
		if err != nil {
			logger.Warn("Failed to open sqlite lead store, lead capture disabled", zap.Error(err))
			return repository.NewUnavailableStore("lead database unavailable", logger)
		}
		return store
	case "memory":
		logger.Warn("Using in-memory lead store; leads will not survive a restart")
		return repository.NewMemoryStore()
	default:
		return repository.NewSheetsStore(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, logger)
	}
}
