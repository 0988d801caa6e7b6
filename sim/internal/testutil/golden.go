// Package testutil provides shared test infrastructure for the seek-sim engine.
// It consolidates the reference schedule dataset and assertion helpers used
// across sim/ and its sub-package tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// ReferenceDataset represents the structure of testdata/reference.yaml.
type ReferenceDataset struct {
	Cases []ReferenceCase `yaml:"cases"`
}

// ReferenceCase is one queue scheduled under every algorithm.
type ReferenceCase struct {
	Name      string              `yaml:"name"`
	Requests  []int               `yaml:"requests"`
	Head      int                 `yaml:"head"`
	Direction string              `yaml:"direction"`
	DiskSize  int                 `yaml:"disk_size"`
	Expected  []ReferenceSchedule `yaml:"expected"`
}

// ReferenceSchedule is the expected output of one algorithm.
type ReferenceSchedule struct {
	Algorithm string `yaml:"algorithm"`
	Order     []int  `yaml:"order"`
	Total     int    `yaml:"total"`
}

// LoadReferenceDataset loads the reference dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadReferenceDataset(t *testing.T) *ReferenceDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "reference.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read reference dataset: %v", err)
	}

	var dataset ReferenceDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse reference dataset: %v", err)
	}
	if len(dataset.Cases) == 0 {
		t.Fatal("Reference dataset has no cases")
	}
	return &dataset
}

// PathLength sums absolute differences between consecutive cylinders.
func PathLength(path []int) int {
	total := 0
	for i := 1; i < len(path); i++ {
		d := path[i] - path[i-1]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// AssertSameMultiset fails the test if got and want do not hold the same
// values with the same multiplicities.
func AssertSameMultiset(t *testing.T, name string, want, got []int) {
	t.Helper()
	counts := make(map[int]int, len(want))
	for _, v := range want {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("%s: value %d count differs by %d (want %v, got %v)", name, v, c, want, got)
		}
	}
}
