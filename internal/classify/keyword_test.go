package classify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"anggaran/internal/core"
)

func TestKeywordClassify(t *testing.T) {
	k := NewKeywordClassifier()
	ctx := context.Background()

	cases := []struct {
		desc string
		want core.Category
	}{
		{"Bayar listrik", core.Kebutuhan},
		{"Makan di KFC", core.Keinginan},
		{"Setor tabungan", core.TabunganInvestasi},
		{"MAKAN SIANG", core.Keinginan},
		{"isi pulsa", core.Kebutuhan},
		{"beli bbm motor", core.Kebutuhan},
		{"deposito bulanan", core.TabunganInvestasi},
		{"bayar cicilan rumah", core.Lainnya},
		{"", core.Lainnya},
		{"   ", core.Lainnya},
	}
	for _, tc := range cases {
		if got := k.Classify(ctx, tc.desc); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestKeywordClassifyIsDeterministic(t *testing.T) {
	k := NewKeywordClassifier()
	ctx := context.Background()
	first := k.Classify(ctx, "ngopi di cafe")
	for i := 0; i < 10; i++ {
		if got := k.Classify(ctx, "ngopi di cafe"); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestKeywordRuleOrderWins(t *testing.T) {
	// "makan" (Keinginan) appears before "listrik" (Kebutuhan) in the default
	// rules; a description matching both takes the earlier rule.
	k := NewKeywordClassifier()
	if got := k.Classify(context.Background(), "makan dekat gardu listrik"); got != core.Keinginan {
		t.Errorf("got %v, want %v", got, core.Keinginan)
	}
}

func TestKeywordClassifierFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	rules := `- category: Kewajiban
  keywords: [cicilan, pajak]
- category: Kebutuhan
  keywords: [sembako]
`
	if err := os.WriteFile(path, []byte(rules), 0o644); err != nil {
		t.Fatal(err)
	}

	k, err := NewKeywordClassifierFromFile(path)
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}

	ctx := context.Background()
	if got := k.Classify(ctx, "bayar cicilan motor"); got != core.Kewajiban {
		t.Errorf("got %v, want %v", got, core.Kewajiban)
	}
	if got := k.Classify(ctx, "belanja sembako"); got != core.Kebutuhan {
		t.Errorf("got %v, want %v", got, core.Kebutuhan)
	}
	// Default rules are replaced, not merged.
	if got := k.Classify(ctx, "makan di kfc"); got != core.Lainnya {
		t.Errorf("got %v, want %v", got, core.Lainnya)
	}
}

func TestKeywordClassifierFromFileRejectsBadRules(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"unknown category", "- category: Hiburan\n  keywords: [nonton]\n"},
		{"no keywords", "- category: Kebutuhan\n  keywords: []\n"},
		{"empty file", ""},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewKeywordClassifierFromFile(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
