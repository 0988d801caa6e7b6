package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/seek-sim/sim"
)

// GeneratorConfig parameterizes a random scenario.
type GeneratorConfig struct {
	Seed        int64
	NumRequests int
	DiskSize    int
	Direction   string   // empty means DefaultDirection
	Algorithms  []string // empty means all
}

// GenerateScenario draws a uniform random request queue and head position.
// Deterministic given the same config: requests and head use separate RNG
// subsystems, so changing NumRequests never changes the head.
func GenerateScenario(cfg GeneratorConfig) (*Scenario, error) {
	if cfg.NumRequests < 0 {
		return nil, fmt.Errorf("num_requests must be non-negative, got %d", cfg.NumRequests)
	}
	if cfg.DiskSize <= 0 {
		return nil, fmt.Errorf("disk_size must be positive, got %d", cfg.DiskSize)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	reqRNG := rng.ForSubsystem(sim.SubsystemRequests)
	headRNG := rng.ForSubsystem(sim.SubsystemHead)

	requests := make([]int, cfg.NumRequests)
	for i := range requests {
		requests[i] = reqRNG.Intn(cfg.DiskSize)
	}

	seed := int64(rng.Key())
	s := &Scenario{
		Requests:   requests,
		Head:       headRNG.Intn(cfg.DiskSize),
		Direction:  cfg.Direction,
		DiskSize:   cfg.DiskSize,
		Algorithms: append([]string(nil), cfg.Algorithms...),
		Seed:       &seed,
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("generated scenario is invalid: %w", err)
	}
	logrus.Debugf("generated %d requests on a %d-cylinder disk, head=%d (seed=%d)",
		len(s.Requests), s.DiskSize, s.Head, cfg.Seed)
	return s, nil
}
