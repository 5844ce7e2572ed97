// Command anggaran-cli runs the categorization pipeline once over a local
// CSV ledger (or the configured Google Sheet) and prints the summary,
// ratios, and advisories. With -out it also writes the HTML report; with
// -enqueue it publishes a report request for the worker instead of running
// locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"anggaran/internal/amqp"
	"anggaran/internal/classify"
	"anggaran/internal/config"
	"anggaran/internal/ledger"
	"anggaran/internal/ledger/csvfile"
	ledgergoogle "anggaran/internal/ledger/google"
	applog "anggaran/internal/log"
	"anggaran/internal/pipeline"
	"anggaran/internal/report"
)

func main() {
	_ = godotenv.Load()

	var (
		file    = flag.String("file", "", "path to the CSV ledger (omit to read the configured Google Sheet)")
		out     = flag.String("out", "", "write the HTML report to this path")
		backend = flag.String("backend", "", "classifier backend: keyword or gemini (overrides CLASSIFIER_BACKEND)")
		enqueue = flag.Bool("enqueue", false, "publish a report request for the worker instead of running locally")
	)
	flag.Parse()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if *backend != "" {
		cfg.ClassifierBackend = *backend
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var err error
	if *enqueue {
		err = publish(ctx, cfg, *file)
	} else {
		err = run(ctx, cfg, *file, *out)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// publish hands the run to the worker over AMQP. The message carries only
// the ledger reference, so the path must be readable by the worker.
func publish(ctx context.Context, cfg *config.Config, file string) error {
	source := "sheets"
	if file != "" {
		source = "csv"
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("connect to AMQP: %w", err)
	}
	defer client.Close()

	msg := amqp.NewReportRequestMessage(file, source)
	if err := client.PublishReportRequest(ctx, msg); err != nil {
		return fmt.Errorf("publish report request: %w", err)
	}

	fmt.Printf("Permintaan laporan dikirim (source=%s)\n", source)
	return nil
}

func run(ctx context.Context, cfg *config.Config, file, out string) error {
	classifier, err := classify.New(ctx, classify.Config{
		Backend:      classify.Backend(cfg.ClassifierBackend),
		RulesFile:    cfg.RulesFile,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		CallTimeout:  cfg.ClassifyTimeout,
	})
	if err != nil {
		return fmt.Errorf("initialize classifier: %w", err)
	}

	var src ledger.Source
	if file != "" {
		src = &csvfile.File{Path: file}
	} else {
		src, err = ledgergoogle.NewFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("open google sheet: %w", err)
		}
	}

	runner := pipeline.NewRunner(classifier, cfg.ClassifyConcurrency)
	result, err := runner.Run(ctx, src)
	if err != nil {
		return err
	}

	fmt.Printf("Laporan %s (%d transaksi)\n\n", result.RunID, result.Stats.Rows)
	fmt.Printf("Total pengeluaran: %s\n\n", report.FormatRupiah(result.Summary.Total()))
	for _, line := range result.Payload.Ratios {
		fmt.Printf("  %-22s %14s  %s\n", line.Label, report.FormatRupiah(line.Amount), line.ShareLabel)
	}

	fmt.Println("\nInsight:")
	for _, a := range result.Advisories {
		fmt.Printf("  [%s] %s\n", a.Level, a.Message)
	}

	if result.Stats.CoercedAmounts > 0 {
		fmt.Printf("\nCatatan: %d nominal tidak terbaca dan dihitung 0.\n", result.Stats.CoercedAmounts)
	}

	if out != "" {
		doc, err := report.Export(ctx, result.Payload, nil)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		if err := os.WriteFile(out, doc.HTML, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("\nLaporan HTML ditulis ke %s\n", out)
	}

	return nil
}
