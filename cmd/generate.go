package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/seek-sim/sim/workload"
)

var (
	genSeed        int64
	genNumRequests int
	genDiskSize    int
	genDirection   string
	genAlgorithms  []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random scenario YAML",
	Long:  "Draw a seeded random request queue and head position and write the scenario as YAML to stdout, ready for run --scenario.",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := workload.GenerateScenario(workload.GeneratorConfig{
			Seed:        genSeed,
			NumRequests: genNumRequests,
			DiskSize:    genDiskSize,
			Direction:   genDirection,
			Algorithms:  genAlgorithms,
		})
		if err != nil {
			logrus.Fatalf("Scenario generation failed: %v", err)
		}
		logrus.Infof("Generated head=%d requests: %s", sc.Head, workload.FormatRequests(sc.Requests))
		if err := writeScenario(os.Stdout, sc); err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
	},
}

// writeScenario marshals a Scenario to YAML and writes it to w.
func writeScenario(w io.Writer, sc *workload.Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random request generation")
	generateCmd.Flags().IntVar(&genNumRequests, "num-requests", 10, "Number of requests")
	generateCmd.Flags().IntVar(&genDiskSize, "disk-size", workload.DefaultDiskSize, "Number of cylinders")
	generateCmd.Flags().StringVar(&genDirection, "direction", workload.DefaultDirection, "Initial sweep direction (left, right)")
	generateCmd.Flags().StringSliceVar(&genAlgorithms, "algorithms", nil, "Algorithms to record in the scenario; default all")

	rootCmd.AddCommand(generateCmd)
}
