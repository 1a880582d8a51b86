package style

// Direction states which end of a metric delta counts as leading.
type Direction int

const (
	// HigherLeads marks metrics where the larger value leads.
	HigherLeads Direction = iota
	// LowerLeads marks metrics where the smaller value leads
	// (smoother or more consistent is better).
	LowerLeads
)

// DirectionTable maps metric names to their leading direction. Comparison
// logic is driven entirely by this table; adding a metric means adding a
// row here, not touching Compare.
type DirectionTable map[string]Direction

// DefaultDirections returns the conventions for the built-in metrics.
func DefaultDirections() DirectionTable {
	return DirectionTable{
		MetricBrakingAggressiveness: HigherLeads,
		MetricThrottleSmoothness:    LowerLeads,
		MetricCorneringConsistency:  LowerLeads,
		MetricGearShiftFrequency:    HigherLeads,
	}
}

// Side identifies one of the two compared drivers.
type Side int

const (
	SideA Side = iota
	SideB
)

// MetricComparison pairs one metric across the two drivers.
type MetricComparison struct {
	Metric string
	A      float64
	B      float64
	Delta  float64 // A minus B
	Leader Side
}

// Comparison is the derived comparison of two style profiles. Ephemeral:
// recomputed on demand, never stored.
type Comparison struct {
	A    *Profile
	B    *Profile
	Rows []MetricComparison
}

// Compare pairs the two profiles' metrics, computing signed deltas and a
// per-metric leader according to the direction table. Metrics absent from
// the table default to HigherLeads. Exact ties report side A as leader, so
// swapping the arguments negates every delta and swaps every non-tied
// leader.
func Compare(a, b *Profile, table DirectionTable) Comparison {
	names := MetricNames()
	rows := make([]MetricComparison, 0, len(names))
	for _, name := range names {
		av := a.Metrics[name]
		bv := b.Metrics[name]

		row := MetricComparison{
			Metric: name,
			A:      av,
			B:      bv,
			Delta:  av - bv,
			Leader: SideA,
		}

		dir := HigherLeads
		if d, ok := table[name]; ok {
			dir = d
		}
		switch {
		case dir == HigherLeads && bv > av:
			row.Leader = SideB
		case dir == LowerLeads && bv < av:
			row.Leader = SideB
		}

		rows = append(rows, row)
	}
	return Comparison{A: a, B: b, Rows: rows}
}

// Leader returns the leading profile for a comparison row.
func (c Comparison) Leader(row MetricComparison) *Profile {
	if row.Leader == SideB {
		return c.B
	}
	return c.A
}

// Row returns the comparison row for a metric name.
func (c Comparison) Row(metric string) (MetricComparison, bool) {
	for _, row := range c.Rows {
		if row.Metric == metric {
			return row, true
		}
	}
	return MetricComparison{}, false
}
