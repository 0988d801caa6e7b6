package sim

import (
	"fmt"
	"strings"
)

// Registry names of the scheduling policies.
const (
	NameFCFS  = "fcfs"
	NameSSTF  = "sstf"
	NameSCAN  = "scan"
	NameCSCAN = "c-scan"
)

// Geometry carries the disk parameters used by sweeping policies.
// FCFS and SSTF ignore it.
type Geometry struct {
	Direction Direction
	DiskSize  int
}

// Scheduler orders a request queue and accounts for the head movement.
// Implementations are stateless: Schedule is a pure function of its inputs.
type Scheduler interface {
	Name() string
	Schedule(requests []int, head int) Result
}

// FCFSScheduler services requests in arrival order.
type FCFSScheduler struct{}

func (FCFSScheduler) Name() string { return NameFCFS }

func (FCFSScheduler) Schedule(requests []int, head int) Result {
	return FCFS(requests, head)
}

// SSTFScheduler services the nearest pending request first.
type SSTFScheduler struct{}

func (SSTFScheduler) Name() string { return NameSSTF }

func (SSTFScheduler) Schedule(requests []int, head int) Result {
	return SSTF(requests, head)
}

// SCANScheduler sweeps to an edge and reverses (elevator algorithm).
type SCANScheduler struct {
	Geometry Geometry
}

func (s SCANScheduler) Name() string { return NameSCAN }

func (s SCANScheduler) Schedule(requests []int, head int) Result {
	return SCAN(requests, head, s.Geometry.Direction, s.Geometry.DiskSize)
}

// CSCANScheduler sweeps to an edge and wraps around to the other edge.
type CSCANScheduler struct {
	Geometry Geometry
}

func (s CSCANScheduler) Name() string { return NameCSCAN }

func (s CSCANScheduler) Schedule(requests []int, head int) Result {
	return CSCAN(requests, head, s.Geometry.Direction, s.Geometry.DiskSize)
}

// ValidSchedulers is the set of recognized scheduler names.
var ValidSchedulers = map[string]bool{NameFCFS: true, NameSSTF: true, NameSCAN: true, NameCSCAN: true}

// canonicalOrder is the display order used when no selection is given.
var canonicalOrder = []string{NameFCFS, NameSSTF, NameSCAN, NameCSCAN}

// NormalizeSchedulerName lower-cases and trims name so "C-SCAN" and " fcfs"
// resolve to registry names.
func NormalizeSchedulerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsValidScheduler returns true if name (after normalization) is registered.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[NormalizeSchedulerName(name)]
}

// SchedulerNames returns all registered names in canonical order.
func SchedulerNames() []string {
	return append([]string(nil), canonicalOrder...)
}

// NewScheduler creates a Scheduler by name.
// Names are normalized first, so "SSTF" and "C-SCAN" are accepted.
// Panics on unrecognized names; validate with IsValidScheduler first.
func NewScheduler(name string, geo Geometry) Scheduler {
	if !IsValidScheduler(name) {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch NormalizeSchedulerName(name) {
	case NameFCFS:
		return FCFSScheduler{}
	case NameSSTF:
		return SSTFScheduler{}
	case NameSCAN:
		return SCANScheduler{Geometry: geo}
	case NameCSCAN:
		return CSCANScheduler{Geometry: geo}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}

// RunAll runs each named scheduler on the same inputs, sequentially and in
// the given order. An empty names slice runs every scheduler in canonical
// order. Runs share no state.
func RunAll(names []string, requests []int, head int, geo Geometry) []Result {
	if len(names) == 0 {
		names = canonicalOrder
	}
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, NewScheduler(name, geo).Schedule(requests, head))
	}
	return results
}
