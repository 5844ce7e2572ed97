package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"anggaran/internal/ledger"
	"anggaran/internal/ledger/csvfile"
)

// readLedgerUpload extracts the uploaded ledger from the request. A
// multipart form is expected to carry the file under "file"; a raw body with
// a CSV content type is accepted as well.
func readLedgerUpload(r *http.Request) (ledger.Table, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return ledger.Table{}, fmt.Errorf("parse upload: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return ledger.Table{}, fmt.Errorf("missing file field: %w", err)
		}
		defer file.Close()
		return csvfile.New(file).Read(r.Context())
	}

	// Raw CSV body.
	return csvfile.New(r.Body).Read(r.Context())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
