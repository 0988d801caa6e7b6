package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/seek-sim/sim"
)

// Defaults match the classic textbook example.
const (
	DefaultDiskSize  = 200
	DefaultHead      = 50
	DefaultDirection = string(sim.DirectionLeft)
	DefaultRequests  = "82, 170, 43, 140, 24, 16, 190"
)

// MaxRequests bounds the queue length accepted by Validate. SSTF is quadratic
// in the queue length.
const MaxRequests = 10000

// Scenario is one scheduling experiment: a static request queue, the disk it
// lives on and the algorithms to compare. Loaded from YAML via LoadScenario
// or decoded from JSON by the HTTP front end.
type Scenario struct {
	Requests   []int    `yaml:"requests" json:"requests"`
	Head       int      `yaml:"head" json:"head"`
	Direction  string   `yaml:"direction,omitempty" json:"direction,omitempty"`
	DiskSize   int      `yaml:"disk_size,omitempty" json:"disk_size,omitempty"`
	Algorithms []string `yaml:"algorithms,omitempty" json:"algorithms,omitempty"`
	Seed       *int64   `yaml:"seed,omitempty" json:"seed,omitempty"` // set by GenerateScenario; informational
}

// DefaultScenario returns the textbook scenario with every algorithm selected.
func DefaultScenario() *Scenario {
	reqs, err := ParseRequests(DefaultRequests)
	if err != nil {
		panic(fmt.Sprintf("default requests do not parse: %v", err))
	}
	return &Scenario{
		Requests:   reqs,
		Head:       DefaultHead,
		Direction:  DefaultDirection,
		DiskSize:   DefaultDiskSize,
		Algorithms: sim.SchedulerNames(),
	}
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return DecodeScenario(bytes.NewReader(data))
}

// DecodeScenario parses a YAML scenario from r with strict field checking
// and applies defaults. It does not validate.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	s.ApplyDefaults()
	return &s, nil
}

// ApplyDefaults fills unset disk size and direction and normalizes algorithm
// names. Head is never defaulted: cylinder 0 is a valid head position.
func (s *Scenario) ApplyDefaults() {
	if s.DiskSize == 0 {
		logrus.Debugf("disk_size not set; using %d", DefaultDiskSize)
		s.DiskSize = DefaultDiskSize
	}
	if s.Direction == "" {
		logrus.Debugf("direction not set; using %s", DefaultDirection)
		s.Direction = DefaultDirection
	}
	if s.Requests == nil {
		s.Requests = []int{}
	}
	for i, name := range s.Algorithms {
		s.Algorithms[i] = sim.NormalizeSchedulerName(name)
	}
}

// Validate checks that the scenario can be scheduled: a positive disk size,
// head and every request inside [0, disk_size-1], a known direction and
// known, non-repeated algorithm names. An empty request queue is valid; one
// longer than MaxRequests is not.
func (s *Scenario) Validate() error {
	if s.DiskSize <= 0 {
		return fmt.Errorf("disk_size must be positive, got %d", s.DiskSize)
	}
	last := s.DiskSize - 1
	if s.Head < 0 || s.Head > last {
		return fmt.Errorf("head must be in [0, %d], got %d", last, s.Head)
	}
	if !sim.IsValidDirection(s.Direction) {
		return fmt.Errorf("unknown direction %q; valid: left, right", s.Direction)
	}
	if len(s.Requests) > MaxRequests {
		return fmt.Errorf("too many requests: %d exceeds the limit of %d", len(s.Requests), MaxRequests)
	}
	for i, r := range s.Requests {
		if r < 0 || r > last {
			return fmt.Errorf("requests[%d]: cylinder %d outside [0, %d]", i, r, last)
		}
	}
	seen := make(map[string]bool, len(s.Algorithms))
	for i, name := range s.Algorithms {
		if !sim.IsValidScheduler(name) {
			return fmt.Errorf("algorithms[%d]: unknown algorithm %q; valid: %v", i, name, sim.SchedulerNames())
		}
		norm := sim.NormalizeSchedulerName(name)
		if seen[norm] {
			return fmt.Errorf("algorithms[%d]: %q listed more than once", i, name)
		}
		seen[norm] = true
	}
	return nil
}

// Geometry returns the sweep parameters. Call Validate first.
func (s *Scenario) Geometry() sim.Geometry {
	dir, _ := sim.ParseDirection(s.Direction)
	return sim.Geometry{Direction: dir, DiskSize: s.DiskSize}
}

// AlgorithmNames returns the selected algorithms, or all of them in canonical
// order when none are selected.
func (s *Scenario) AlgorithmNames() []string {
	if len(s.Algorithms) == 0 {
		return sim.SchedulerNames()
	}
	names := make([]string, len(s.Algorithms))
	for i, name := range s.Algorithms {
		names[i] = sim.NormalizeSchedulerName(name)
	}
	return names
}

// Run schedules the request queue under every selected algorithm.
// Call Validate first.
func (s *Scenario) Run() []sim.Result {
	return sim.RunAll(s.AlgorithmNames(), s.Requests, s.Head, s.Geometry())
}
