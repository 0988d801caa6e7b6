// Package trace provides head-movement recording for seek analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// MoveKind classifies a single head movement.
type MoveKind string

const (
	// KindService is a move that ends on a requested cylinder.
	KindService MoveKind = "service"
	// KindBoundary is a sweep to the disk edge before reversing or wrapping.
	KindBoundary MoveKind = "boundary"
	// KindWrap is the edge-to-edge return of a circular sweep.
	KindWrap MoveKind = "wrap"
)

// Move captures one head movement between two cylinders.
type Move struct {
	Step     int      `json:"step"`
	From     int      `json:"from"`
	To       int      `json:"to"`
	Distance int      `json:"distance"`
	Kind     MoveKind `json:"kind"`
}
