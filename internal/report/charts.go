package report

import (
	"strconv"

	"anggaran/internal/aggregate"
)

type (
	// PieSlice is one slice of the proportion chart.
	PieSlice struct {
		Label string  `json:"label"`
		Value float64 `json:"value"`
		Share float64 `json:"share"`
	}

	// PieChart is the category-proportion chart payload. The UI layer treats
	// it as an opaque renderable object.
	PieChart struct {
		Title  string     `json:"title"`
		Slices []PieSlice `json:"slices"`
		Total  float64    `json:"total"`
	}

	// Series is one category line in the time-series chart.
	Series struct {
		Label  string    `json:"label"`
		Points []float64 `json:"points"`
	}

	// SeriesChart is the month × category chart payload.
	SeriesChart struct {
		Title  string   `json:"title"`
		Months []string `json:"months"`
		Series []Series `json:"series"`
	}

	// Charts bundles the optional chart payloads of a report.
	Charts struct {
		Proportion *PieChart    `json:"proportion,omitempty"`
		Trend      *SeriesChart `json:"trend,omitempty"`
	}
)

// BuildPieChart shapes a summary into the proportion chart, slices in fixed
// category order.
func BuildPieChart(summary aggregate.Summary, ratios aggregate.RatioSet) *PieChart {
	if len(summary) == 0 {
		return nil
	}
	chart := &PieChart{
		Title: "Proporsi Pengeluaran per Kategori",
		Total: summary.Total(),
	}
	for _, c := range summary.Categories() {
		chart.Slices = append(chart.Slices, PieSlice{
			Label: c.String(),
			Value: summary[c],
			Share: ratios.Share(c),
		})
	}
	return chart
}

// BuildSeriesChart shapes a monthly pivot into the trend chart. A pivot with
// no dated transactions yields nil and the trend chart is skipped.
func BuildSeriesChart(pivot aggregate.Pivot) *SeriesChart {
	if len(pivot.Months) == 0 {
		return nil
	}
	chart := &SeriesChart{Title: "Tren Bulanan per Kategori"}
	for _, m := range pivot.Months {
		chart.Months = append(chart.Months, m.String())
	}
	for _, c := range pivot.Categories {
		s := Series{Label: c.String(), Points: make([]float64, 0, len(pivot.Months))}
		for _, m := range pivot.Months {
			s.Points = append(s.Points, pivot.Cells[m][c])
		}
		chart.Series = append(chart.Series, s)
	}
	return chart
}

// BuildProjectionChart shapes a savings-goal projection into a single-series
// chart for the simulation view.
func BuildProjectionChart(p aggregate.Projection) *SeriesChart {
	if len(p.Saved) == 0 {
		return nil
	}
	chart := &SeriesChart{Title: "Proyeksi Pencapaian Target"}
	series := Series{Label: "Total Tabungan", Points: p.Saved}
	for i := range p.Saved {
		chart.Months = append(chart.Months, "Bulan "+strconv.Itoa(i+1))
	}
	chart.Series = []Series{series}
	return chart
}
