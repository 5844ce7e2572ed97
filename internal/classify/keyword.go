package classify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"anggaran/internal/core"
)

// Rule maps a keyword set to a label. Rules are evaluated in order and the
// first set containing a matched keyword wins.
type Rule struct {
	Category core.Category `yaml:"category"`
	Keywords []string      `yaml:"keywords"`
}

// KeywordClassifier is the deterministic variant: case-insensitive substring
// matching against curated keyword sets. It is pure and total; descriptions
// matching no rule get the Lainnya label.
type KeywordClassifier struct {
	rules []Rule
}

var _ Classifier = (*KeywordClassifier)(nil)

// defaultRules mirrors the curated sets the app shipped with.
func defaultRules() []Rule {
	return []Rule{
		{Category: core.Keinginan, Keywords: []string{"makan", "resto", "kfc", "cafe", "kopi"}},
		{Category: core.Kebutuhan, Keywords: []string{"listrik", "air", "transport", "bbm", "pulsa", "sewa"}},
		{Category: core.TabunganInvestasi, Keywords: []string{"tabung", "invest", "deposito"}},
	}
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{rules: defaultRules()}
}

// NewKeywordClassifierFromFile loads rule overrides from a YAML file:
//
//	- category: Kebutuhan
//	  keywords: [listrik, air, sewa]
func NewKeywordClassifierFromFile(path string) (*KeywordClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}
	for i, r := range rules {
		if !r.Category.IsValid() {
			return nil, fmt.Errorf("rules file %s: rule %d has unknown category %q", path, i, r.Category)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: rule %d (%s) has no keywords", path, i, r.Category)
		}
	}
	return &KeywordClassifier{rules: rules}, nil
}

// Classify matches the lowercased description against the rule list in
// priority order. Same input always yields the same label.
func (k *KeywordClassifier) Classify(_ context.Context, description string) core.Category {
	needle := core.NormalizeDescription(description)
	if needle == "" {
		return core.Lainnya
	}
	for _, rule := range k.rules {
		for _, kw := range rule.Keywords {
			kw = core.NormalizeDescription(kw)
			if kw != "" && strings.Contains(needle, kw) {
				return rule.Category
			}
		}
	}
	return core.Lainnya
}
