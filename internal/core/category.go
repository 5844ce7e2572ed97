package core

import "strings"

// Category is the closed set of budgeting labels a transaction can carry.
// Which labels exist is a type-level fact; free-text categories never enter
// the pipeline.
type Category string

const (
	// The four canonical labels used by the advisor and the external
	// classifier taxonomy.
	Kewajiban Category = "Kewajiban"
	Kebutuhan Category = "Kebutuhan"
	Tujuan    Category = "Tujuan"
	Keinginan Category = "Keinginan"

	// Extra labels produced by the keyword classifier.
	TabunganInvestasi Category = "Tabungan/Investasi"
	Lainnya           Category = "Lainnya"

	// TidakTerkategori is the unclassified sentinel. Every classification
	// failure mode collapses to it.
	TidakTerkategori Category = "Tidak Terkategori"
)

// Canonical returns the four labels the external classifier may emit and the
// advisor evaluates, in fixed presentation order.
func Canonical() []Category {
	return []Category{Kewajiban, Kebutuhan, Tujuan, Keinginan}
}

// AllCategories returns every label the pipeline can assign, in fixed
// presentation order. Used for dense pivots and report section ordering.
func AllCategories() []Category {
	return []Category{Kewajiban, Kebutuhan, Tujuan, Keinginan, TabunganInvestasi, Lainnya, TidakTerkategori}
}

// IsValid reports whether c is one of the enumerated labels.
func (c Category) IsValid() bool {
	switch c {
	case Kewajiban, Kebutuhan, Tujuan, Keinginan, TabunganInvestasi, Lainnya, TidakTerkategori:
		return true
	default:
		return false
	}
}

// IsCanonical reports whether c is one of the four canonical labels.
func (c Category) IsCanonical() bool {
	switch c {
	case Kewajiban, Kebutuhan, Tujuan, Keinginan:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory matches s against the enumerated labels, ignoring case and
// surrounding whitespace. The second return value is false when s matches
// nothing.
func ParseCategory(s string) (Category, bool) {
	needle := strings.TrimSpace(s)
	for _, c := range AllCategories() {
		if strings.EqualFold(needle, string(c)) {
			return c, true
		}
	}
	return TidakTerkategori, false
}
