package advise

import (
	"testing"

	"anggaran/internal/aggregate"
	"anggaran/internal/core"
)

func shares(m map[core.Category]float64) aggregate.RatioSet {
	return aggregate.RatioSet{Shares: m}
}

func codes(advisories []Advisory) map[string]Advisory {
	out := make(map[string]Advisory, len(advisories))
	for _, a := range advisories {
		out[a.Code] = a
	}
	return out
}

func TestEvaluateInsufficientData(t *testing.T) {
	out := Evaluate(aggregate.RatioSet{Insufficient: true})
	if len(out) != 1 {
		t.Fatalf("expected exactly one advisory, got %d", len(out))
	}
	if out[0].Code != "insufficient_data" || out[0].Level != LevelInfo {
		t.Errorf("got %+v", out[0])
	}
}

func TestEvaluateSingleRules(t *testing.T) {
	cases := []struct {
		name      string
		ratios    aggregate.RatioSet
		wantCode  string
		wantLevel Level
	}{
		{
			name: "keinginan above 40%",
			ratios: shares(map[core.Category]float64{
				core.Keinginan: 0.45, core.Kebutuhan: 0.30, core.Tujuan: 0.15, core.Kewajiban: 0.10,
			}),
			wantCode:  "keinginan_tinggi",
			wantLevel: LevelWarning,
		},
		{
			name: "tujuan below 10%",
			ratios: shares(map[core.Category]float64{
				core.Keinginan: 0.30, core.Kebutuhan: 0.38, core.Tujuan: 0.05, core.Kewajiban: 0.27,
			}),
			wantCode:  "tujuan_rendah",
			wantLevel: LevelInfo,
		},
		{
			name: "kebutuhan above 50%",
			ratios: shares(map[core.Category]float64{
				core.Keinginan: 0.12, core.Kebutuhan: 0.55, core.Tujuan: 0.15, core.Kewajiban: 0.18,
			}),
			wantCode:  "kebutuhan_dominan",
			wantLevel: LevelWarning,
		},
		{
			name: "kewajiban above 30%",
			ratios: shares(map[core.Category]float64{
				core.Keinginan: 0.20, core.Kebutuhan: 0.30, core.Tujuan: 0.15, core.Kewajiban: 0.35,
			}),
			wantCode:  "kewajiban_berlebih",
			wantLevel: LevelError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := codes(Evaluate(tc.ratios))
			a, ok := got[tc.wantCode]
			if !ok {
				t.Fatalf("advisory %q did not fire: %v", tc.wantCode, got)
			}
			if a.Level != tc.wantLevel {
				t.Errorf("level = %v, want %v", a.Level, tc.wantLevel)
			}
			if a.Message == "" {
				t.Error("advisory has no message")
			}
		})
	}
}

func TestEvaluateMultipleRulesFireTogether(t *testing.T) {
	ratios := shares(map[core.Category]float64{
		core.Keinginan: 0.45,
		core.Kebutuhan: 0.05,
		core.Tujuan:    0.05,
		core.Kewajiban: 0.45,
	})
	got := codes(Evaluate(ratios))
	for _, want := range []string{"keinginan_tinggi", "tujuan_rendah", "kewajiban_berlebih"} {
		if _, ok := got[want]; !ok {
			t.Errorf("advisory %q did not fire: %v", want, got)
		}
	}
	if _, ok := got["seimbang"]; ok {
		t.Error("balanced advisory fired alongside violations")
	}
}

func TestEvaluateBalanced(t *testing.T) {
	ratios := shares(map[core.Category]float64{
		core.Kewajiban: 0.25,
		core.Kebutuhan: 0.30,
		core.Tujuan:    0.20,
		core.Keinginan: 0.25,
	})
	out := Evaluate(ratios)
	if len(out) != 1 {
		t.Fatalf("expected only the balanced advisory, got %v", out)
	}
	if out[0].Code != "seimbang" || out[0].Level != LevelSuccess {
		t.Errorf("got %+v", out[0])
	}
}

func TestEvaluateBalancedBandIsStrict(t *testing.T) {
	// A share sitting exactly on a band edge is not balanced.
	ratios := shares(map[core.Category]float64{
		core.Kewajiban: 0.10,
		core.Kebutuhan: 0.30,
		core.Tujuan:    0.20,
		core.Keinginan: 0.40,
	})
	got := codes(Evaluate(ratios))
	if _, ok := got["seimbang"]; ok {
		t.Error("edge shares must not count as balanced")
	}
}

func TestEvaluateNoRuleFires(t *testing.T) {
	// Keinginan at 40% exactly: no threshold crossed, not balanced either.
	ratios := shares(map[core.Category]float64{
		core.Kewajiban: 0.10,
		core.Kebutuhan: 0.30,
		core.Tujuan:    0.20,
		core.Keinginan: 0.40,
	})
	got := codes(Evaluate(ratios))
	for _, code := range []string{"keinginan_tinggi", "tujuan_rendah", "kebutuhan_dominan", "kewajiban_berlebih"} {
		if _, ok := got[code]; ok {
			t.Errorf("advisory %q fired on edge shares", code)
		}
	}
}
