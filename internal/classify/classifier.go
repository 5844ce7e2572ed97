// Package classify assigns budgeting categories to transaction descriptions.
//
// Classification is total: every description gets exactly one enumerated
// label. Failure modes of the external variant collapse to the unclassified
// sentinel and are logged, never propagated.
package classify

import (
	"context"
	"fmt"
	"time"

	"anggaran/internal/core"
)

// Classifier maps a free-text transaction description to one category label.
// Implementations must be safe for concurrent use and must never fail past
// this boundary.
type Classifier interface {
	Classify(ctx context.Context, description string) core.Category
}

// Backend selects the classifier strategy.
type Backend string

const (
	BackendKeyword Backend = "keyword"
	BackendGemini  Backend = "gemini"
)

// Config carries everything a classifier constructor needs. Lifecycle is
// scoped to one pipeline run; there is no package-level client state.
type Config struct {
	Backend Backend

	// Keyword variant
	RulesFile string // optional YAML rule override

	// Gemini variant
	GeminiAPIKey string
	GeminiModel  string
	CallTimeout  time.Duration

	// Bounded parallelism for per-row classification.
	Concurrency int
}

// New constructs the configured classifier.
func New(ctx context.Context, cfg Config) (Classifier, error) {
	switch cfg.Backend {
	case BackendKeyword, "":
		if cfg.RulesFile != "" {
			return NewKeywordClassifierFromFile(cfg.RulesFile)
		}
		return NewKeywordClassifier(), nil
	case BackendGemini:
		return NewGeminiClassifier(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Backend)
	}
}
