// Package report shapes pipeline output into a document payload and renders
// the markup export. Presentation proper (PDF layout, chart drawing) belongs
// to external collaborators; this package only fixes the schema they consume.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"anggaran/internal/advise"
	"anggaran/internal/aggregate"
	"anggaran/internal/core"
	"anggaran/internal/ingest"
)

type (
	// RatioLine is one (label, value) pair of the ratio section, in fixed
	// canonical order.
	RatioLine struct {
		Label      string  `json:"label"`
		Amount     float64 `json:"amount"`
		Share      float64 `json:"share"`
		ShareLabel string  `json:"share_label"` // "20.69%", or the "0%" sentinel
	}

	// Table is the transaction section: ordered column names plus row tuples,
	// the shape the external renderer expects.
	Table struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}

	// Payload is the self-contained document handed to the template/PDF
	// collaborator.
	Payload struct {
		Title        string            `json:"title"`
		RunID        string            `json:"run_id"`
		GeneratedAt  time.Time         `json:"generated_at"`
		Total        float64           `json:"total"`
		Ratios       []RatioLine       `json:"ratios"`
		Transactions Table             `json:"transactions"`
		Advisories   []advise.Advisory `json:"advisories"`
		Charts       *Charts           `json:"charts,omitempty"`
		Stats        ingest.Stats      `json:"stats"`
	}
)

// Assemble combines classified transactions, aggregates, and advisories into
// the document payload. It never renders presentation itself.
func Assemble(
	runID string,
	txs []core.Transaction,
	summary aggregate.Summary,
	ratios aggregate.RatioSet,
	pivot aggregate.Pivot,
	advisories []advise.Advisory,
	stats ingest.Stats,
) *Payload {
	p := &Payload{
		Title:       "Laporan Keuangan Pribadi",
		RunID:       runID,
		GeneratedAt: time.Now(),
		Total:       summary.Total(),
		Advisories:  advisories,
		Stats:       stats,
	}

	for _, c := range summary.Categories() {
		p.Ratios = append(p.Ratios, RatioLine{
			Label:      c.String(),
			Amount:     summary[c],
			Share:      ratios.Share(c),
			ShareLabel: FormatShare(ratios, c),
		})
	}

	p.Transactions = Table{Columns: []string{"Tanggal", "Transaksi", "Jumlah", "Kategori"}}
	for _, t := range txs {
		date := ""
		if t.HasDate() {
			date = t.Date.Format("2006-01-02")
		}
		p.Transactions.Rows = append(p.Transactions.Rows, []string{
			date,
			t.Description,
			FormatRupiah(t.Amount),
			t.Category.String(),
		})
	}

	charts := &Charts{
		Proportion: BuildPieChart(summary, ratios),
		Trend:      BuildSeriesChart(pivot),
	}
	if charts.Proportion != nil || charts.Trend != nil {
		p.Charts = charts
	}

	return p
}

// FormatShare renders a category share as a percentage string. The zero-total
// sentinel renders every share as "0%".
func FormatShare(ratios aggregate.RatioSet, c core.Category) string {
	if ratios.Insufficient {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", ratios.Share(c)*100)
}

// FormatRupiah formats an amount as Rupiah with dot grouping and no decimals,
// e.g. -1234567.8 → "-Rp1.234.568".
func FormatRupiah(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "Rp" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
