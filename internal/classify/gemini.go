package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"anggaran/internal/core"
)

const (
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-2.0-flash"

	// DefaultCallTimeout bounds a single classification call. A slow call is
	// a failed call; the row degrades to the sentinel.
	DefaultCallTimeout = 10 * time.Second

	// The reply should be a single word; anything longer is already suspect.
	maxReplyTokens = 10
)

// GeminiClassifier is the external-service variant. It asks the model for a
// one-word answer from the closed four-label taxonomy, sanitizes the reply,
// and validates it against the canonical labels. Every failure mode (empty
// input, API error, timeout, malformed or out-of-set reply) collapses to
// core.TidakTerkategori and is reported to the log, never to the caller.
//
// Results are not guaranteed identical across repeated calls with the same
// input, even at temperature zero.
type GeminiClassifier struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ Classifier = (*GeminiClassifier)(nil)

func NewGeminiClassifier(ctx context.Context, cfg Config) (*GeminiClassifier, error) {
	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	}
	if cfg.GeminiAPIKey != "" {
		cc.APIKey = cfg.GeminiAPIKey
		cc.Backend = genai.BackendGeminiAPI
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.GeminiModel
	if model == "" {
		model = DefaultGeminiModel
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	return &GeminiClassifier{client: client, model: model, timeout: timeout}, nil
}

// buildPrompt embeds the description and the closed label set into a fixed
// instruction. The model is told to answer with a single word.
func buildPrompt(description string) string {
	return "Tugas kamu adalah mengklasifikasikan transaksi berikut ke salah satu dari 4 kategori:\n" +
		"- Kewajiban\n" +
		"- Kebutuhan\n" +
		"- Tujuan\n" +
		"- Keinginan\n\n" +
		"Jawaban hanya satu kata saja.\n\n" +
		fmt.Sprintf("Transaksi: %q\n", description) +
		"Jawaban:"
}

func (g *GeminiClassifier) Classify(ctx context.Context, description string) core.Category {
	if strings.TrimSpace(description) == "" {
		return core.TidakTerkategori
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(description)},
			},
		},
	}

	// Deterministic decoding, short output.
	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: maxReplyTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		slog.WarnContext(ctx, "Classification call failed",
			"model", g.model, "error", err)
		return core.TidakTerkategori
	}

	raw := resp.Text()
	label, ok := parseReply(raw)
	if !ok {
		slog.WarnContext(ctx, "Classification reply outside label set",
			"model", g.model, "reply", raw)
		return core.TidakTerkategori
	}
	return label
}

// parseReply sanitizes a raw model reply and validates it against the four
// canonical labels: trim, strip every non-ASCII-letter character, capitalize.
// "Kebutuhan.\n" cleans to "Kebutuhan"; "I don't know" cleans to "Idontknow"
// and is rejected.
func parseReply(raw string) (core.Category, bool) {
	token := lettersOnly(strings.TrimSpace(raw))
	if token == "" {
		return core.TidakTerkategori, false
	}
	token = capitalize(token)

	for _, c := range core.Canonical() {
		if token == string(c) {
			return c, true
		}
	}
	return core.TidakTerkategori, false
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
