// Package advise evaluates aggregated category shares against fixed
// thresholds and produces qualitative budget-health signals.
package advise

import (
	"anggaran/internal/aggregate"
	"anggaran/internal/core"
)

// Level grades an advisory.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Advisory is one budget-health signal. Code is stable for machine
// consumers; Message is what the UI shows.
type Advisory struct {
	Level   Level  `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fixed thresholds over the canonical category shares.
const (
	maxKeinginanShare = 0.40
	minTujuanShare    = 0.10
	maxKebutuhanShare = 0.50
	maxKewajibanShare = 0.30

	// The balanced band: every canonical share strictly inside it.
	balancedLow  = 0.10
	balancedHigh = 0.40
)

// Evaluate runs every rule independently against the ratio set; several
// advisories may fire at once and evaluation order never changes the output.
//
// A zero-total dataset yields a single insufficient-data advisory: with 0/0
// shares no rule is meaningful and claiming "balanced" would be false.
func Evaluate(ratios aggregate.RatioSet) []Advisory {
	if ratios.Insufficient {
		return []Advisory{{
			Level:   LevelInfo,
			Code:    "insufficient_data",
			Message: "Data transaksi belum cukup untuk menilai kesehatan anggaran.",
		}}
	}

	var out []Advisory

	if ratios.Share(core.Keinginan) > maxKeinginanShare {
		out = append(out, Advisory{
			Level:   LevelWarning,
			Code:    "keinginan_tinggi",
			Message: "Pengeluaran untuk Keinginan terlalu tinggi. Pertimbangkan untuk menurunkannya agar keuangan lebih sehat.",
		})
	}
	if ratios.Share(core.Tujuan) < minTujuanShare {
		out = append(out, Advisory{
			Level:   LevelInfo,
			Code:    "tujuan_rendah",
			Message: "Alokasi untuk Tujuan masih rendah. Coba sisihkan lebih banyak untuk tujuan keuangan jangka panjang.",
		})
	}
	if ratios.Share(core.Kebutuhan) > maxKebutuhanShare {
		out = append(out, Advisory{
			Level:   LevelWarning,
			Code:    "kebutuhan_dominan",
			Message: "Pengeluaran Kebutuhan mendominasi anggaran. Periksa pos-pos pokok yang bisa dihemat.",
		})
	}
	if ratios.Share(core.Kewajiban) > maxKewajibanShare {
		out = append(out, Advisory{
			Level:   LevelError,
			Code:    "kewajiban_berlebih",
			Message: "Beban Kewajiban melebihi batas aman. Kurangi cicilan atau utang sebelum menambah pengeluaran lain.",
		})
	}
	if balanced(ratios) {
		out = append(out, Advisory{
			Level:   LevelSuccess,
			Code:    "seimbang",
			Message: "Struktur keuangan kamu sudah ideal. Pertahankan!",
		})
	}

	return out
}

// balanced reports whether every canonical share lies strictly inside the
// balanced band.
func balanced(ratios aggregate.RatioSet) bool {
	for _, c := range core.Canonical() {
		share := ratios.Share(c)
		if share <= balancedLow || share >= balancedHigh {
			return false
		}
	}
	return true
}
