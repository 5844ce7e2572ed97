package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Transaction is one canonical ledger row after normalization.
	// Description is never nil-ish (missing source column yields ""), Amount
	// is always numeric (coercion failures yield 0), and Category is always
	// one of the enumerated labels once classification has run.
	Transaction struct {
		Date        time.Time // zero when the source had no parseable date
		Description string
		Amount      float64
		Category    Category
	}

	// Month identifies a calendar month, the grain of the monthly pivot.
	Month struct {
		Year  int
		Month time.Month
	}
)

// HasDate reports whether the source row carried a parseable date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// MonthOf truncates the transaction date to its calendar month.
// Only meaningful when HasDate is true.
func (t Transaction) MonthOf() Month {
	return Month{Year: t.Date.Year(), Month: t.Date.Month()}
}

// Validate checks the post-normalization invariant: a classified transaction
// always carries an enumerated label.
func (t Transaction) Validate() error {
	if t.Category != "" && !t.Category.IsValid() {
		return errors.New("category outside the enumerated label set")
	}
	return nil
}

// Before orders months chronologically.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// String formats the month as "2006-01".
func (m Month) String() string {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return t.Format("2006-01")
}

// MarshalText lets Month serve as a JSON map key in pivot payloads.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// NormalizeDescription lowercases and trims a description for matching and
// cache keys.
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
