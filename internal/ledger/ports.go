package ledger

import (
	"context"
	"strings"
)

type (
	// Table is a raw tabular ledger as read from an uploaded file or a
	// spreadsheet: a header row plus string cells. Column names vary across
	// bank export formats and are matched case-insensitively downstream.
	Table struct {
		Columns []string
		Rows    [][]string
	}

	// Source is the inbound port for ledger data. Implementations read
	// delimited text files, Google Sheets ranges, or in-memory fixtures.
	Source interface {
		Read(ctx context.Context) (Table, error)
	}
)

// ColumnIndex returns the index of the first column whose name matches one
// of the given candidates, ignoring case and surrounding whitespace.
// Candidates are tried in order, so earlier names take priority.
func (t Table) ColumnIndex(candidates ...string) int {
	for _, want := range candidates {
		for i, col := range t.Columns {
			if strings.EqualFold(strings.TrimSpace(col), want) {
				return i
			}
		}
	}
	return -1
}

// Cell returns row[i] or "" when the row is shorter than the header.
// Ragged rows are common in hand-edited exports.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
