package aggregate

// Projection simulates reaching a savings target with a fixed monthly
// contribution. Months counts whole contributions needed (integer division,
// the way the app always presented it); Saved is the cumulative balance
// after each month, ready for a time-series chart.
type Projection struct {
	Target   float64   `json:"target"`
	PerMonth float64   `json:"per_month"`
	Months   int       `json:"months"`
	Saved    []float64 `json:"saved"`
}

// Project computes the goal projection. Non-positive target or contribution
// yields an empty projection, never a division fault.
func Project(target, perMonth float64) Projection {
	p := Projection{Target: target, PerMonth: perMonth}
	if target <= 0 || perMonth <= 0 {
		return p
	}
	p.Months = int(target / perMonth)
	p.Saved = make([]float64, p.Months)
	for i := 0; i < p.Months; i++ {
		p.Saved[i] = perMonth * float64(i+1)
	}
	return p
}
