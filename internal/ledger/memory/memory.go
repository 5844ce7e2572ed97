// Package memory provides an in-memory ledger source for tests and seeding.
package memory

import (
	"context"
	"sync"

	"anggaran/internal/ledger"
)

type Store struct {
	mu    sync.Mutex
	table ledger.Table
}

var _ ledger.Source = (*Store)(nil)

func New(columns []string, rows [][]string) *Store {
	return &Store{table: ledger.Table{Columns: columns, Rows: rows}}
}

func (s *Store) Read(_ context.Context) (ledger.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols := append([]string(nil), s.table.Columns...)
	rows := make([][]string, len(s.table.Rows))
	for i, r := range s.table.Rows {
		rows[i] = append([]string(nil), r...)
	}
	return ledger.Table{Columns: cols, Rows: rows}, nil
}

// AppendRow adds a raw row; useful when a test builds up a ledger piecewise.
func (s *Store) AppendRow(row []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Rows = append(s.table.Rows, append([]string(nil), row...))
}
