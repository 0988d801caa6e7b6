package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScenario_Deterministic(t *testing.T) {
	cfg := GeneratorConfig{Seed: 42, NumRequests: 25, DiskSize: 500}

	a, err := GenerateScenario(cfg)
	require.NoError(t, err)
	b, err := GenerateScenario(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateScenario_WithinDisk(t *testing.T) {
	s, err := GenerateScenario(GeneratorConfig{Seed: 7, NumRequests: 200, DiskSize: 50})
	require.NoError(t, err)

	require.Len(t, s.Requests, 200)
	for i, r := range s.Requests {
		assert.True(t, r >= 0 && r < 50, "request %d = %d outside disk", i, r)
	}
	assert.True(t, s.Head >= 0 && s.Head < 50)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(7), *s.Seed)
	assert.Equal(t, DefaultDirection, s.Direction)
}

func TestGenerateScenario_HeadIndependentOfRequestCount(t *testing.T) {
	few, err := GenerateScenario(GeneratorConfig{Seed: 99, NumRequests: 3, DiskSize: 1000})
	require.NoError(t, err)
	many, err := GenerateScenario(GeneratorConfig{Seed: 99, NumRequests: 300, DiskSize: 1000})
	require.NoError(t, err)

	assert.Equal(t, few.Head, many.Head)
	assert.Equal(t, few.Requests, many.Requests[:3], "a longer queue extends the shorter one")
}

func TestGenerateScenario_DifferentSeedsDiffer(t *testing.T) {
	a, err := GenerateScenario(GeneratorConfig{Seed: 1, NumRequests: 20, DiskSize: 1000})
	require.NoError(t, err)
	b, err := GenerateScenario(GeneratorConfig{Seed: 2, NumRequests: 20, DiskSize: 1000})
	require.NoError(t, err)

	assert.NotEqual(t, a.Requests, b.Requests)
}

func TestGenerateScenario_ZeroRequests_Valid(t *testing.T) {
	s, err := GenerateScenario(GeneratorConfig{Seed: 1, NumRequests: 0, DiskSize: 10})
	require.NoError(t, err)
	assert.Empty(t, s.Requests)
}

func TestGenerateScenario_InvalidConfig(t *testing.T) {
	_, err := GenerateScenario(GeneratorConfig{NumRequests: -1, DiskSize: 10})
	assert.Error(t, err)

	_, err = GenerateScenario(GeneratorConfig{NumRequests: 1, DiskSize: 0})
	assert.Error(t, err)

	_, err = GenerateScenario(GeneratorConfig{NumRequests: 1, DiskSize: 10, Direction: "sideways"})
	assert.Error(t, err)

	_, err = GenerateScenario(GeneratorConfig{NumRequests: 1, DiskSize: 10, Algorithms: []string{"elevator"}})
	assert.Error(t, err)
}

func TestGenerateScenario_AlgorithmsNormalizedWithoutAliasingConfig(t *testing.T) {
	algos := []string{"SSTF"}
	s, err := GenerateScenario(GeneratorConfig{Seed: 3, NumRequests: 2, DiskSize: 10, Algorithms: algos})
	require.NoError(t, err)

	assert.Equal(t, []string{"sstf"}, s.Algorithms)
	assert.Equal(t, "SSTF", algos[0])
}
