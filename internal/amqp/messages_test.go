package amqp

import (
	"testing"
	"time"
)

func TestReportRequestMessageRoundTrip(t *testing.T) {
	msg := NewReportRequestMessage("/data/ledger.csv", "csv")
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ReportRequestMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Path != "/data/ledger.csv" || got.Source != "csv" {
		t.Errorf("got %+v", got)
	}
	if got.RequestedAt.IsZero() {
		t.Error("requested_at missing")
	}
}

func TestReportRequestMessageValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"csv with path", `{"path": "/data/ledger.csv", "source": "csv"}`, false},
		{"sheets without path", `{"source": "sheets"}`, false},
		{"csv without path", `{"source": "csv"}`, true},
		{"empty message", `{}`, true},
		{"malformed json", `{`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReportRequestMessageFromJSON([]byte(tc.payload))
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestReportDoneMessageToJSON(t *testing.T) {
	msg := &ReportDoneMessage{
		RunID:      "run-1",
		ReportPath: "/reports/laporan-run-1.html",
		Rows:       3,
		FinishedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty payload")
	}
}
