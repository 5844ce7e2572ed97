// Package http serves the upload-and-report API. Each upload is one
// synchronous pipeline run; the server holds no state between requests.
package http

import (
	"net/http"
	"time"

	"anggaran/internal/log"
	"anggaran/internal/pipeline"
	"anggaran/internal/report"
)

// maxUploadBytes bounds ledger uploads. Personal ledgers are small; anything
// bigger is a mistake or abuse.
const maxUploadBytes = 8 << 20 // 8 MiB

type Server struct {
	http.Server
	runner *pipeline.Runner
	pdf    report.PDFRenderer // optional, nil when no backend configured
}

// NewServer wires the routes and middleware around a pipeline runner.
func NewServer(addr string, runner *pipeline.Runner, pdf report.PDFRenderer, logger *log.Logger) *Server {
	s := &Server{
		Server: http.Server{
			Addr:           addr,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   60 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		runner: runner,
		pdf:    pdf,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/report", s.handleReport)
	mux.HandleFunc("POST /api/report/html", s.handleReportHTML)
	mux.HandleFunc("POST /api/projection", s.handleProjection)

	handler := securityHeaders(mux)
	if logger != nil {
		handler = log.Middleware(logger)(handler)
	}
	s.Handler = handler

	return s
}

// securityHeaders applies the response headers every endpoint shares.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
