package trace

// TraceSummary aggregates statistics from a SeekTrace.
type TraceSummary struct {
	ServiceMoves     int `json:"service_moves"`
	ServiceDistance  int `json:"service_distance"`
	BoundaryMoves    int `json:"boundary_moves"`
	WrapMoves        int `json:"wrap_moves"`
	OverheadDistance int `json:"overhead_distance"` // distance spent on boundary and wrap moves
	TotalDistance    int `json:"total_distance"`
	MaxSeek          int `json:"max_seek"`
	Reversals        int `json:"reversals"` // changes of travel direction, wraps excluded
}

// Summarize computes aggregate statistics from a SeekTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SeekTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	lastSign := 0
	for _, m := range st.Moves {
		switch m.Kind {
		case KindService:
			summary.ServiceMoves++
			summary.ServiceDistance += m.Distance
		case KindBoundary:
			summary.BoundaryMoves++
			summary.OverheadDistance += m.Distance
		case KindWrap:
			summary.WrapMoves++
			summary.OverheadDistance += m.Distance
		}
		summary.TotalDistance += m.Distance
		if m.Distance > summary.MaxSeek {
			summary.MaxSeek = m.Distance
		}

		if m.Kind == KindWrap {
			continue
		}
		sign := 0
		switch {
		case m.To > m.From:
			sign = 1
		case m.To < m.From:
			sign = -1
		}
		if sign == 0 {
			continue
		}
		if lastSign != 0 && sign != lastSign {
			summary.Reversals++
		}
		lastSign = sign
	}

	return summary
}
