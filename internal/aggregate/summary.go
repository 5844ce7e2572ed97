// Package aggregate computes per-category totals, shares, and monthly pivots
// from classified transactions. All functions are pure; inputs are never
// mutated.
package aggregate

import (
	"math"
	"sort"

	"anggaran/internal/core"
)

type (
	// Summary maps each category present in the data to the sum of absolute
	// amounts in that category. Categories with no transactions are absent,
	// not zero-filled.
	Summary map[core.Category]float64

	// RatioSet holds each category's share of the total in [0,1].
	// Insufficient is set when the total is exactly zero: every share is 0
	// and nothing downstream should read the shares as meaningful.
	RatioSet struct {
		Shares       map[core.Category]float64 `json:"shares"`
		Insufficient bool                      `json:"insufficient"`
	}

	// Pivot is the dense monthly table: signed sums per (month, category)
	// over the continuous month range observed in the data. Zero cells are
	// present, not missing.
	Pivot struct {
		Months     []core.Month                         `json:"months"`
		Categories []core.Category                      `json:"categories"`
		Cells      map[core.Month]map[core.Category]float64 `json:"cells"`
	}
)

// Total returns the sum of all category totals.
func (s Summary) Total() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Categories returns the categories present in the summary in the fixed
// presentation order, so reports and charts are stable across runs.
func (s Summary) Categories() []core.Category {
	out := make([]core.Category, 0, len(s))
	for _, c := range core.AllCategories() {
		if _, ok := s[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Summarize groups classified transactions by category and sums absolute
// amounts per group. Classification is total and mutually exclusive, so the
// per-category totals partition the total absolute amount.
func Summarize(txs []core.Transaction) Summary {
	s := make(Summary)
	for _, t := range txs {
		s[t.Category] += math.Abs(t.Amount)
	}
	return s
}

// Ratios computes each category's share of the total. A zero total yields
// the insufficient-data sentinel instead of a division fault.
func Ratios(s Summary) RatioSet {
	total := s.Total()
	rs := RatioSet{Shares: make(map[core.Category]float64, len(s))}
	if total == 0 {
		rs.Insufficient = true
		for c := range s {
			rs.Shares[c] = 0
		}
		return rs
	}
	for c, v := range s {
		rs.Shares[c] = v / total
	}
	return rs
}

// Share returns the share for c, or 0 when c is absent.
func (r RatioSet) Share(c core.Category) float64 {
	return r.Shares[c]
}

// MonthlyPivot builds the dense (month × category) table of signed sums.
// Transactions without a parseable date are skipped; when no transaction has
// a date the pivot is empty.
func MonthlyPivot(txs []core.Transaction) Pivot {
	sums := make(map[core.Month]map[core.Category]float64)
	catSeen := make(map[core.Category]bool)
	var first, last core.Month
	var any bool

	for _, t := range txs {
		if !t.HasDate() {
			continue
		}
		m := t.MonthOf()
		if !any {
			first, last = m, m
			any = true
		} else {
			if m.Before(first) {
				first = m
			}
			if last.Before(m) {
				last = m
			}
		}
		if sums[m] == nil {
			sums[m] = make(map[core.Category]float64)
		}
		sums[m][t.Category] += t.Amount
		catSeen[t.Category] = true
	}

	if !any {
		return Pivot{}
	}

	cats := make([]core.Category, 0, len(catSeen))
	for _, c := range core.AllCategories() {
		if catSeen[c] {
			cats = append(cats, c)
		}
	}

	p := Pivot{
		Categories: cats,
		Cells:      make(map[core.Month]map[core.Category]float64),
	}
	for m := first; !last.Before(m); m = m.Next() {
		p.Months = append(p.Months, m)
		row := make(map[core.Category]float64, len(cats))
		for _, c := range cats {
			row[c] = sums[m][c] // zero-filled when absent
		}
		p.Cells[m] = row
	}
	sort.Slice(p.Months, func(i, j int) bool { return p.Months[i].Before(p.Months[j]) })
	return p
}
