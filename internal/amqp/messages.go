package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// ReportRequestMessage asks the worker to run the pipeline over a ledger
// file. The message carries only a reference; the worker reads the file
// itself so messages stay small.
type ReportRequestMessage struct {
	Path        string    `json:"path"`   // ledger file path readable by the worker
	Source      string    `json:"source"` // "csv" or "sheets"
	RequestedAt time.Time `json:"requested_at"`
}

// ReportDoneMessage announces a finished run and where the report landed.
type ReportDoneMessage struct {
	RunID      string    `json:"run_id"`
	ReportPath string    `json:"report_path"`
	Rows       int       `json:"rows"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewReportRequestMessage(path, source string) *ReportRequestMessage {
	return &ReportRequestMessage{
		Path:        path,
		Source:      source,
		RequestedAt: time.Now(),
	}
}

func (m *ReportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportRequestMessageFromJSON(data []byte) (*ReportRequestMessage, error) {
	var m ReportRequestMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal report request: %w", err)
	}
	if m.Path == "" && m.Source != "sheets" {
		return nil, fmt.Errorf("report request has no ledger path")
	}
	return &m, nil
}

func (m *ReportDoneMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
