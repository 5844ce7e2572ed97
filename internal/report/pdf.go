package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// PDFRenderer is the boundary to the external fixed-layout renderer. The
// pipeline only hands it the payload; layout is entirely its concern.
type PDFRenderer interface {
	Render(ctx context.Context, p *Payload) ([]byte, error)
}

// ErrPDFUnavailable signals that no PDF backend is configured. Callers fall
// back to the markup export.
var ErrPDFUnavailable = errors.New("pdf renderer unavailable")

// Document is a rendered report. HTML is always present; PDF only when the
// optional backend is configured and succeeded. Warnings collect non-fatal
// feature degradations for the user.
type Document struct {
	HTML     []byte   `json:"-"`
	PDF      []byte   `json:"-"`
	Warnings []string `json:"warnings,omitempty"`
}

// Export renders the payload. A missing or failing PDF backend degrades to
// the markup export with a warning; it never fails the run as long as the
// markup renders.
func Export(ctx context.Context, p *Payload, pdf PDFRenderer) (Document, error) {
	var doc Document

	html, err := RenderHTML(p)
	if err != nil {
		return doc, fmt.Errorf("html export: %w", err)
	}
	doc.HTML = html

	if pdf == nil {
		doc.Warnings = append(doc.Warnings, "Ekspor PDF tidak tersedia; gunakan ekspor HTML.")
		return doc, nil
	}

	data, err := pdf.Render(ctx, p)
	if err != nil {
		slog.WarnContext(ctx, "PDF rendering failed, falling back to HTML",
			"run_id", p.RunID, "error", err)
		doc.Warnings = append(doc.Warnings, "Ekspor PDF gagal; gunakan ekspor HTML.")
		return doc, nil
	}
	doc.PDF = data

	return doc, nil
}
