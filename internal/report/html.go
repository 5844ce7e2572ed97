package report

import (
	"bytes"
	"fmt"
	"html/template"

	"anggaran/web"
)

// RenderHTML renders the payload as a self-contained markup document using
// the embedded report template. This is the export that is always available,
// whatever happens to the PDF backend.
func RenderHTML(p *Payload) ([]byte, error) {
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"rupiah": FormatRupiah,
	}).ParseFS(web.TemplatesFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
