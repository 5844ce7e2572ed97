package report

import (
	"testing"
	"time"

	"anggaran/internal/aggregate"
	"anggaran/internal/core"
)

func TestBuildPieChart(t *testing.T) {
	summary := aggregate.Summary{
		core.Kebutuhan: 150000,
		core.Keinginan: 75000,
	}
	chart := BuildPieChart(summary, aggregate.Ratios(summary))

	if chart == nil {
		t.Fatal("expected a chart")
	}
	if chart.Title != "Proporsi Pengeluaran per Kategori" {
		t.Errorf("title = %q", chart.Title)
	}
	if chart.Total != 225000 {
		t.Errorf("total = %v, want 225000", chart.Total)
	}
	if len(chart.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(chart.Slices))
	}
	// Fixed order: Kebutuhan before Keinginan.
	if chart.Slices[0].Label != "Kebutuhan" || chart.Slices[1].Label != "Keinginan" {
		t.Errorf("slice order: %v", chart.Slices)
	}
}

func TestBuildPieChartEmpty(t *testing.T) {
	if chart := BuildPieChart(aggregate.Summary{}, aggregate.RatioSet{}); chart != nil {
		t.Errorf("expected nil chart, got %+v", chart)
	}
}

func TestBuildSeriesChart(t *testing.T) {
	txs := []core.Transaction{
		{Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Amount: 100, Category: core.Kebutuhan},
		{Date: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), Amount: 200, Category: core.Kebutuhan},
	}
	chart := BuildSeriesChart(aggregate.MonthlyPivot(txs))

	if chart == nil {
		t.Fatal("expected a chart")
	}
	if len(chart.Months) != 2 || chart.Months[0] != "2025-01" || chart.Months[1] != "2025-02" {
		t.Errorf("months = %v", chart.Months)
	}
	if len(chart.Series) != 1 {
		t.Fatalf("expected one series, got %d", len(chart.Series))
	}
	s := chart.Series[0]
	if s.Label != "Kebutuhan" || len(s.Points) != 2 || s.Points[0] != 100 || s.Points[1] != 200 {
		t.Errorf("unexpected series: %+v", s)
	}
}

func TestBuildSeriesChartNoDates(t *testing.T) {
	if chart := BuildSeriesChart(aggregate.Pivot{}); chart != nil {
		t.Errorf("expected nil chart, got %+v", chart)
	}
}

func TestBuildProjectionChart(t *testing.T) {
	chart := BuildProjectionChart(aggregate.Project(10000000, 2000000))
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if len(chart.Months) != 5 || chart.Months[0] != "Bulan 1" || chart.Months[4] != "Bulan 5" {
		t.Errorf("months = %v", chart.Months)
	}
	if len(chart.Series) != 1 || chart.Series[0].Points[4] != 10000000 {
		t.Errorf("series = %+v", chart.Series)
	}

	if chart := BuildProjectionChart(aggregate.Projection{}); chart != nil {
		t.Errorf("empty projection should yield nil, got %+v", chart)
	}
}
