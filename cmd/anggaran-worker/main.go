package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"anggaran/internal/amqp"
	"anggaran/internal/classify"
	"anggaran/internal/config"
	applog "anggaran/internal/log"
	"anggaran/internal/pipeline"
	"anggaran/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

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

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	runner := pipeline.NewRunner(classifier, cfg.ClassifyConcurrency)
	reportWorker := worker.NewReportWorker(runner, client, nil, cfg.ReportDir)

	logger.Info("Worker started",
		"queue", cfg.AMQPQueue,
		applog.FieldBackend, cfg.ClassifierBackend,
		"report_dir", cfg.ReportDir)

	err = client.ConsumeReportRequests(ctx, func(msg *amqp.ReportRequestMessage) error {
		return reportWorker.HandleReportRequest(ctx, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped with error", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
