package http

import (
	"encoding/json"
	"net/http"
	"time"

	"anggaran/internal/advise"
	"anggaran/internal/aggregate"
	"anggaran/internal/ingest"
	"anggaran/internal/log"
	"anggaran/internal/report"
)

// reportResponse is the JSON shape of a completed run.
type reportResponse struct {
	RunID      string             `json:"run_id"`
	Total      float64            `json:"total"`
	Summary    aggregate.Summary  `json:"summary"`
	Ratios     aggregate.RatioSet `json:"ratios"`
	Advisories []advise.Advisory  `json:"advisories"`
	Charts     *report.Charts     `json:"charts,omitempty"`
	Stats      ingest.Stats       `json:"stats"`
	Warnings   []string           `json:"warnings,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleReport accepts a multipart CSV upload, runs the pipeline, and
// returns the aggregates and advisories as JSON.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	table, err := readLedgerUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.runner.RunTable(r.Context(), table)
	if err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Pipeline run failed", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "pipeline run failed")
		return
	}

	resp := reportResponse{
		RunID:      result.RunID,
		Total:      result.Summary.Total(),
		Summary:    result.Summary,
		Ratios:     result.Ratios,
		Advisories: result.Advisories,
		Charts:     result.Payload.Charts,
		Stats:      result.Stats,
	}
	if s.pdf == nil {
		resp.Warnings = append(resp.Warnings, "Ekspor PDF tidak tersedia; gunakan ekspor HTML.")
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleReportHTML accepts the same upload and returns the rendered markup
// report directly, ready to save or print.
func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	table, err := readLedgerUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.runner.RunTable(r.Context(), table)
	if err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Pipeline run failed", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "pipeline run failed")
		return
	}

	doc, err := report.Export(r.Context(), result.Payload, s.pdf)
	if err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Report export failed",
			log.FieldRunID, result.RunID, log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "report export failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="laporan_keuangan.html"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc.HTML)
}

// handleProjection runs the savings-goal simulation.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target   float64 `json:"target"`
		PerMonth float64 `json:"per_month"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid projection request")
		return
	}
	if req.Target <= 0 || req.PerMonth <= 0 {
		writeError(w, http.StatusBadRequest, "target and per_month must be positive")
		return
	}

	projection := aggregate.Project(req.Target, req.PerMonth)
	writeJSON(w, http.StatusOK, map[string]any{
		"projection": projection,
		"chart":      report.BuildProjectionChart(projection),
	})
}
