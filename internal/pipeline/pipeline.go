// Package pipeline runs the full categorization pass over one uploaded
// ledger: normalize, classify, aggregate, advise, assemble. Data flows
// strictly forward; no stage mutates a previous stage's output, and nothing
// persists between runs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"anggaran/internal/advise"
	"anggaran/internal/aggregate"
	"anggaran/internal/classify"
	"anggaran/internal/core"
	"anggaran/internal/ingest"
	"anggaran/internal/ledger"
	"anggaran/internal/report"
)

// Result is everything one run produces. All fields are recomputed fresh per
// run and never mutated afterwards.
type Result struct {
	RunID        string             `json:"run_id"`
	Transactions []core.Transaction `json:"transactions"`
	Summary      aggregate.Summary  `json:"summary"`
	Ratios       aggregate.RatioSet `json:"ratios"`
	Pivot        aggregate.Pivot    `json:"pivot"`
	Advisories   []advise.Advisory  `json:"advisories"`
	Payload      *report.Payload    `json:"payload"`
	Stats        ingest.Stats       `json:"stats"`
}

// Runner executes pipeline runs with a fixed classifier. Construct one per
// configuration; it holds no per-run state and is safe for concurrent runs.
type Runner struct {
	classifier  classify.Classifier
	concurrency int
}

func NewRunner(c classify.Classifier, concurrency int) *Runner {
	return &Runner{classifier: c, concurrency: concurrency}
}

// Run reads the source and processes its table.
func (r *Runner) Run(ctx context.Context, src ledger.Source) (*Result, error) {
	table, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	return r.RunTable(ctx, table)
}

// RunTable processes one raw table to completion. The only error surface is
// the source read in Run; from normalization on, every failure mode degrades
// (coerced cells, sentinel labels, insufficient-data advisories) instead of
// aborting.
func (r *Runner) RunTable(ctx context.Context, table ledger.Table) (*Result, error) {
	runID := uuid.NewString()
	started := time.Now()

	txs, stats := ingest.Normalize(table)
	slog.InfoContext(ctx, "Ledger normalized",
		"run_id", runID,
		"rows", stats.Rows,
		"coerced_amounts", stats.CoercedAmounts,
		"missing_descriptions", stats.MissingDescriptions,
		"unparseable_dates", stats.UnparseableDates)

	classified := classify.All(ctx, r.classifier, txs, r.concurrency)

	summary := aggregate.Summarize(classified)
	ratios := aggregate.Ratios(summary)
	pivot := aggregate.MonthlyPivot(classified)
	advisories := advise.Evaluate(ratios)

	payload := report.Assemble(runID, classified, summary, ratios, pivot, advisories, stats)

	slog.InfoContext(ctx, "Pipeline run finished",
		"run_id", runID,
		"rows", stats.Rows,
		"categories", len(summary),
		"advisories", len(advisories),
		"duration_ms", time.Since(started).Milliseconds())

	return &Result{
		RunID:        runID,
		Transactions: classified,
		Summary:      summary,
		Ratios:       ratios,
		Pivot:        pivot,
		Advisories:   advisories,
		Payload:      payload,
		Stats:        stats,
	}, nil
}
