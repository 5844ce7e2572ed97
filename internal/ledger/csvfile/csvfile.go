// Package csvfile reads delimited ledger exports into a ledger.Table.
package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"anggaran/internal/ledger"
)

// Reader reads a delimited text ledger from an io.Reader. The delimiter is
// sniffed from the header line (semicolon-delimited exports are common from
// Indonesian banks), so callers never configure it.
type Reader struct {
	r io.Reader
}

var _ ledger.Source = (*Reader)(nil)

func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// File returns a Source that opens and reads path on each Read call.
type File struct {
	Path string
}

var _ ledger.Source = (*File)(nil)

func (f *File) Read(ctx context.Context) (ledger.Table, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return ledger.Table{}, fmt.Errorf("open ledger file: %w", err)
	}
	defer fh.Close()
	return New(fh).Read(ctx)
}

func (r *Reader) Read(_ context.Context) (ledger.Table, error) {
	br := bufio.NewReader(r.r)

	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return ledger.Table{}, fmt.Errorf("read header: %w", err)
	}

	cr := csv.NewReader(io.MultiReader(strings.NewReader(header), br))
	cr.Comma = sniffDelimiter(header)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return ledger.Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return ledger.Table{}, nil
	}

	return ledger.Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// sniffDelimiter picks between comma and semicolon based on which occurs in
// the header line. Comma wins ties; unquoted commas inside header names are
// rare enough not to matter.
func sniffDelimiter(header string) rune {
	if !strings.Contains(header, ",") && strings.Contains(header, ";") {
		return ';'
	}
	return ','
}
