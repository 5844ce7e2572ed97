package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCommaDelimited(t *testing.T) {
	csv := "Transaksi,Jumlah\nBayar listrik,150000\nMakan di KFC,75000\n"
	table, err := New(strings.NewReader(csv)).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Columns) != 2 || table.Columns[0] != "Transaksi" {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "Bayar listrik" || table.Rows[0][1] != "150000" {
		t.Errorf("first row = %v", table.Rows[0])
	}
}

func TestReadSemicolonDelimited(t *testing.T) {
	csv := "Transaksi;Jumlah\nBayar listrik;150000\n"
	table, err := New(strings.NewReader(csv)).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Columns) != 2 {
		t.Fatalf("delimiter not sniffed, columns = %v", table.Columns)
	}
	if table.Rows[0][1] != "150000" {
		t.Errorf("first row = %v", table.Rows[0])
	}
}

func TestReadRaggedRows(t *testing.T) {
	csv := "Transaksi,Jumlah\nBayar listrik\nMakan,75000,extra\n"
	table, err := New(strings.NewReader(csv)).Read(context.Background())
	if err != nil {
		t.Fatalf("ragged rows must be tolerated: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if len(table.Rows[0]) != 1 || len(table.Rows[1]) != 3 {
		t.Errorf("row widths = %d and %d", len(table.Rows[0]), len(table.Rows[1]))
	}
}

func TestReadEmptyInput(t *testing.T) {
	table, err := New(strings.NewReader("")).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("expected empty table, got %+v", table)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	table, err := New(strings.NewReader("Transaksi,Jumlah\n")).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Columns) != 2 || len(table.Rows) != 0 {
		t.Errorf("got %+v", table)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.csv")
	if err := os.WriteFile(path, []byte("Transaksi,Jumlah\nMakan,50000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := (&File{Path: path}).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("rows = %d, want 1", len(table.Rows))
	}

	if _, err := (&File{Path: filepath.Join(dir, "missing.csv")}).Read(context.Background()); err == nil {
		t.Error("missing file should fail the read")
	}
}

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		header string
		want   rune
	}{
		{"a,b", ','},
		{"a;b", ';'},
		{"a,b;c", ','}, // comma wins ties
		{"ab", ','},
	}
	for _, tc := range cases {
		if got := sniffDelimiter(tc.header); got != tc.want {
			t.Errorf("sniffDelimiter(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
