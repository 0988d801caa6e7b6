package trace

// SeekTrace collects every head movement of a single schedule, in order.
type SeekTrace struct {
	Start int    `json:"start"`
	Moves []Move `json:"moves"`
}

// NewSeekTrace creates a SeekTrace for a head starting at cylinder start.
func NewSeekTrace(start int, capacity int) *SeekTrace {
	return &SeekTrace{
		Start: start,
		Moves: make([]Move, 0, capacity),
	}
}

// Record appends a movement. Step and Distance are derived from the trace
// state and the endpoints, so callers only supply From, To and Kind.
func (st *SeekTrace) Record(from, to int, kind MoveKind) Move {
	d := to - from
	if d < 0 {
		d = -d
	}
	m := Move{Step: len(st.Moves) + 1, From: from, To: to, Distance: d, Kind: kind}
	st.Moves = append(st.Moves, m)
	return m
}

// Path returns the head positions visited, starting with Start.
// Boundary and wrap cylinders are included.
func (st *SeekTrace) Path() []int {
	path := make([]int, 0, len(st.Moves)+1)
	path = append(path, st.Start)
	for _, m := range st.Moves {
		path = append(path, m.To)
	}
	return path
}
