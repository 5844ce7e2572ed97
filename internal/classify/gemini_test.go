package classify

import (
	"strings"
	"testing"

	"anggaran/internal/core"
)

func TestParseReply(t *testing.T) {
	cases := []struct {
		in   string
		want core.Category
		ok   bool
	}{
		{"Kebutuhan", core.Kebutuhan, true},
		{"Kebutuhan.\n", core.Kebutuhan, true},
		{"  keinginan  ", core.Keinginan, true},
		{"KEWAJIBAN!", core.Kewajiban, true},
		{"tujuan", core.Tujuan, true},
		{"**Kebutuhan**", core.Kebutuhan, true},
		{"I don't know", core.TidakTerkategori, false},
		{"Kebutuhan atau Keinginan", core.TidakTerkategori, false},
		{"Lainnya", core.TidakTerkategori, false}, // outside the canonical set
		{"", core.TidakTerkategori, false},
		{"123", core.TidakTerkategori, false},
	}
	for _, tc := range cases {
		got, ok := parseReply(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseReply(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("Makan di KFC")
	for _, label := range core.Canonical() {
		if !strings.Contains(p, label.String()) {
			t.Errorf("prompt missing label %v", label)
		}
	}
	if !strings.Contains(p, "Makan di KFC") {
		t.Error("prompt missing the description")
	}
	if !strings.Contains(p, "satu kata") {
		t.Error("prompt missing the one-word instruction")
	}
}

func TestLettersOnly(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Kebutuhan.", "Kebutuhan"},
		{"I don't know", "Idontknow"},
		{"a-b_c 1", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := lettersOnly(tc.in); got != tc.want {
			t.Errorf("lettersOnly(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"kebutuhan", "Kebutuhan"},
		{"KEBUTUHAN", "Kebutuhan"},
		{"k", "K"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := capitalize(tc.in); got != tc.want {
			t.Errorf("capitalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
