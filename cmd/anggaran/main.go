package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"anggaran/internal/classify"
	"anggaran/internal/config"
	apphttp "anggaran/internal/http"
	applog "anggaran/internal/log"
	"anggaran/internal/pipeline"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	classifier, err := classify.New(ctx, classify.Config{
		Backend:      classify.Backend(cfg.ClassifierBackend),
		RulesFile:    cfg.RulesFile,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		CallTimeout:  cfg.ClassifyTimeout,
	})
	if err != nil {
		logger.Error("Failed to initialize classifier",
			applog.FieldError, err,
			applog.FieldBackend, cfg.ClassifierBackend)
		os.Exit(1)
	}
	logger.Info("Classifier initialized", applog.FieldBackend, cfg.ClassifierBackend)

	runner := pipeline.NewRunner(classifier, cfg.ClassifyConcurrency)

	// No PDF backend ships with the server; exports degrade to HTML with a
	// warning.
	srv := apphttp.NewServer(":"+cfg.Port, runner, nil, logger)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting anggaran server",
		"port", cfg.Port,
		applog.FieldBackend, cfg.ClassifierBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
