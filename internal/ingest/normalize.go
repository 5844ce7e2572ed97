// Package ingest maps raw ledger tables onto canonical transactions.
//
// Normalization is total: every input row yields exactly one transaction,
// whatever columns the export happens to have. Missing or malformed cells
// degrade to zero values and are counted in Stats instead of failing the run.
package ingest

import (
	"strconv"
	"strings"
	"time"

	"anggaran/internal/core"
	"anggaran/internal/ledger"
)

// Column name variants seen across bank export formats. Matching is
// case-insensitive; order within a list is priority order.
var (
	amountColumns      = []string{"jumlah", "amount", "nominal"}
	descriptionColumns = []string{"transaksi", "deskripsi", "description", "keterangan"}
	debitColumns       = []string{"debit"}
	creditColumns      = []string{"kredit", "credit"}
	dateColumns        = []string{"tanggal", "date", "tgl"}
)

// Date layouts tried in order when parsing the optional date column.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// Stats counts the cells that had to be defaulted during normalization.
// Data-quality issues stay visible without ever aborting the run.
type Stats struct {
	Rows                int  `json:"rows"`
	CoercedAmounts      int  `json:"coerced_amounts"`
	MissingDescriptions int  `json:"missing_descriptions"`
	UnparseableDates    int  `json:"unparseable_dates"`
	AmountColumnFound   bool `json:"amount_column_found"`
	DebitCreditUsed     bool `json:"debit_credit_used"`
	DescriptionFound    bool `json:"description_column_found"`
	DateColumnFound     bool `json:"date_column_found"`
}

// Normalize converts a raw table into canonical transactions, one per input
// row in original order. No row is ever dropped.
//
// Amount resolution order: a single amount column; else debit − kredit when
// both columns exist; else 0 for every row. The debit − kredit convention is
// fixed and documented, not inferred from data.
func Normalize(table ledger.Table) ([]core.Transaction, Stats) {
	stats := Stats{Rows: len(table.Rows)}

	amountIdx := table.ColumnIndex(amountColumns...)
	debitIdx := table.ColumnIndex(debitColumns...)
	creditIdx := table.ColumnIndex(creditColumns...)
	descIdx := table.ColumnIndex(descriptionColumns...)
	dateIdx := table.ColumnIndex(dateColumns...)

	stats.AmountColumnFound = amountIdx >= 0
	stats.DebitCreditUsed = amountIdx < 0 && debitIdx >= 0 && creditIdx >= 0
	stats.DescriptionFound = descIdx >= 0
	stats.DateColumnFound = dateIdx >= 0

	txs := make([]core.Transaction, 0, len(table.Rows))
	for _, row := range table.Rows {
		var tx core.Transaction

		switch {
		case amountIdx >= 0:
			amount, ok := ParseAmount(ledger.Cell(row, amountIdx))
			if !ok {
				stats.CoercedAmounts++
			}
			tx.Amount = amount
		case stats.DebitCreditUsed:
			debit, dok := ParseAmount(ledger.Cell(row, debitIdx))
			credit, cok := ParseAmount(ledger.Cell(row, creditIdx))
			if !dok {
				stats.CoercedAmounts++
			}
			if !cok {
				stats.CoercedAmounts++
			}
			tx.Amount = debit - credit
		default:
			tx.Amount = 0
		}

		if descIdx >= 0 {
			tx.Description = strings.TrimSpace(ledger.Cell(row, descIdx))
		}
		if tx.Description == "" {
			stats.MissingDescriptions++
		}

		if dateIdx >= 0 {
			raw := strings.TrimSpace(ledger.Cell(row, dateIdx))
			if raw != "" {
				if d, ok := parseDate(raw); ok {
					tx.Date = d
				} else {
					stats.UnparseableDates++
				}
			}
		}

		txs = append(txs, tx)
	}

	return txs, stats
}

// ParseAmount coerces a ledger cell to a number. It tolerates a currency
// prefix, spaces, and both grouping conventions ("150,000.50" and the
// Indonesian "1.500.000,25"). Empty or non-numeric cells yield (0, false);
// silent coercion to zero is a deliberate robustness choice.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimPrefix(s, "rp")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Whichever separator comes last is the decimal point; the other
		// groups thousands.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		// A lone comma with exactly three trailing digits is grouping
		// ("150,000"); anything else is a decimal comma ("150000,5").
		if groupingOnly(s, ',') {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	case lastDot >= 0:
		if groupingOnly(s, '.') {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// groupingOnly reports whether every occurrence of sep splits the digits into
// three-digit groups, i.e. sep is a thousands separator and not a decimal
// point.
func groupingOnly(s string, sep rune) bool {
	parts := strings.Split(strings.TrimPrefix(s, "-"), string(sep))
	if len(parts) < 2 {
		return false
	}
	for i, p := range parts {
		if i == 0 {
			if len(p) == 0 || len(p) > 3 {
				return false
			}
			continue
		}
		if len(p) != 3 {
			return false
		}
	}
	return true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
