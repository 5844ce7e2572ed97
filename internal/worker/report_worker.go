// Package worker processes queued report requests: read the ledger, run the
// pipeline, write the HTML report, announce completion.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"anggaran/internal/amqp"
	"anggaran/internal/ledger"
	"anggaran/internal/ledger/csvfile"
	ledgergoogle "anggaran/internal/ledger/google"
	"anggaran/internal/pipeline"
	"anggaran/internal/report"
)

// ReportWorker turns report requests into report files. One request is one
// pipeline run; nothing is shared between runs.
type ReportWorker struct {
	runner    *pipeline.Runner
	publisher *amqp.Client // optional; nil disables done events
	pdf       report.PDFRenderer
	reportDir string
}

func NewReportWorker(runner *pipeline.Runner, publisher *amqp.Client, pdf report.PDFRenderer, reportDir string) *ReportWorker {
	return &ReportWorker{
		runner:    runner,
		publisher: publisher,
		pdf:       pdf,
		reportDir: reportDir,
	}
}

// HandleReportRequest processes one queued request. Errors returned here
// cause a nack-and-requeue, so only genuinely retryable failures (unreadable
// file, unreachable sheet, filesystem errors) propagate; pipeline semantics
// never fail a run.
func (w *ReportWorker) HandleReportRequest(ctx context.Context, msg *amqp.ReportRequestMessage) error {
	slog.InfoContext(ctx, "Processing report request",
		"path", msg.Path,
		"source", msg.Source)

	src, err := w.sourceFor(ctx, msg)
	if err != nil {
		return fmt.Errorf("resolve ledger source: %w", err)
	}

	result, err := w.runner.Run(ctx, src)
	if err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}

	doc, err := report.Export(ctx, result.Payload, w.pdf)
	if err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	for _, warning := range doc.Warnings {
		slog.WarnContext(ctx, "Report export degraded", "run_id", result.RunID, "warning", warning)
	}

	reportPath, err := w.writeReport(result.RunID, doc)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.InfoContext(ctx, "Report written",
		"run_id", result.RunID,
		"report_path", reportPath,
		"rows", result.Stats.Rows)

	if w.publisher != nil {
		done := &amqp.ReportDoneMessage{
			RunID:      result.RunID,
			ReportPath: reportPath,
			Rows:       result.Stats.Rows,
			FinishedAt: time.Now(),
		}
		if err := w.publisher.PublishReportDone(ctx, done); err != nil {
			// The report exists; a lost event is not worth a requeue.
			slog.ErrorContext(ctx, "Failed to publish done event",
				"run_id", result.RunID, "error", err)
		}
	}

	return nil
}

func (w *ReportWorker) sourceFor(ctx context.Context, msg *amqp.ReportRequestMessage) (ledger.Source, error) {
	switch msg.Source {
	case "sheets":
		return ledgergoogle.NewFromEnv(ctx)
	case "csv", "":
		if msg.Path == "" {
			return nil, fmt.Errorf("csv request without a path")
		}
		return &csvfile.File{Path: msg.Path}, nil
	default:
		return nil, fmt.Errorf("unknown ledger source %q", msg.Source)
	}
}

func (w *ReportWorker) writeReport(runID string, doc report.Document) (string, error) {
	if err := os.MkdirAll(w.reportDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	htmlPath := filepath.Join(w.reportDir, fmt.Sprintf("laporan-%s.html", runID))
	if err := os.WriteFile(htmlPath, doc.HTML, 0o644); err != nil {
		return "", fmt.Errorf("write html report: %w", err)
	}

	if len(doc.PDF) > 0 {
		pdfPath := filepath.Join(w.reportDir, fmt.Sprintf("laporan-%s.pdf", runID))
		if err := os.WriteFile(pdfPath, doc.PDF, 0o644); err != nil {
			// HTML already landed; PDF is the optional extra.
			slog.Warn("Failed to write PDF report", "path", pdfPath, "error", err)
		}
	}

	return htmlPath, nil
}
