package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inference-sim/seek-sim/sim"
	"github.com/inference-sim/seek-sim/sim/report"
	"github.com/inference-sim/seek-sim/sim/workload"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "seek-sim",
	Short: "Disk-head scheduling simulator (FCFS, SSTF, SCAN, C-SCAN)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd schedules a request queue and prints the comparison report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule a request queue under one or more algorithms",
	Long: "Schedule a static request queue and compare head movement across algorithms. " +
		"Inputs come from flags, a YAML scenario (--scenario), or both: flags that are set explicitly override the file.",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := scenarioFromFlags(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		opts, err := renderOptionsFromFlags(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid output options: %v", err)
		}
		if err := runScenario(os.Stdout, sc, opts); err != nil {
			logrus.Fatalf("Writing report failed: %v", err)
		}
	},
}

// registerRunFlags defines the run flags on fs.
func registerRunFlags(fs *pflag.FlagSet) {
	fs.String("scenario", "", "Path to a YAML scenario file")
	fs.String("requests", workload.DefaultRequests, "Request queue as comma-separated cylinders")
	fs.Int("head", workload.DefaultHead, "Initial head position (cylinder)")
	fs.String("direction", workload.DefaultDirection, "Initial sweep direction for SCAN and C-SCAN (left, right)")
	fs.Int("disk-size", workload.DefaultDiskSize, "Number of cylinders; valid cylinders are 0..disk-size-1")
	fs.StringSlice("algorithms", nil, "Algorithms to run (fcfs, sstf, scan, c-scan); default all")
	fs.String("output", report.FormatTable, "Output format (table, json)")
	fs.Bool("chart", false, "Include a head-movement chart per algorithm (table output only)")
	fs.Int("chart-width", report.DefaultChartWidth, "Chart width in columns")
}

// scenarioFromFlags builds and validates a scenario. Without --scenario every
// flag value is used (defaults included); with it, only flags the user set
// override the file.
func scenarioFromFlags(fs *pflag.FlagSet) (*workload.Scenario, error) {
	path, _ := fs.GetString("scenario")
	sc := &workload.Scenario{}
	fromFile := path != ""
	if fromFile {
		loaded, err := workload.LoadScenario(path)
		if err != nil {
			return nil, err
		}
		sc = loaded
		logrus.Infof("Loaded scenario from %s", path)
	}
	use := func(name string) bool { return !fromFile || fs.Changed(name) }

	if use("requests") {
		raw, _ := fs.GetString("requests")
		reqs, err := workload.ParseRequests(raw)
		if err != nil {
			return nil, err
		}
		sc.Requests = reqs
	}
	if use("head") {
		sc.Head, _ = fs.GetInt("head")
	}
	if use("direction") {
		sc.Direction, _ = fs.GetString("direction")
	}
	if use("disk-size") {
		sc.DiskSize, _ = fs.GetInt("disk-size")
	}
	if use("algorithms") {
		sc.Algorithms, _ = fs.GetStringSlice("algorithms")
	}

	sc.ApplyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func renderOptionsFromFlags(fs *pflag.FlagSet) (report.Options, error) {
	format, _ := fs.GetString("output")
	chart, _ := fs.GetBool("chart")
	width, _ := fs.GetInt("chart-width")
	if !report.ValidFormats[format] {
		return report.Options{}, fmt.Errorf("unknown output format %q; valid: table, json", format)
	}
	if width < 2 {
		return report.Options{}, fmt.Errorf("chart-width must be at least 2, got %d", width)
	}
	return report.Options{Format: format, Chart: chart, ChartWidth: width}, nil
}

// runScenario schedules sc under every selected algorithm and writes the report to w.
func runScenario(w io.Writer, sc *workload.Scenario, opts report.Options) error {
	if len(sc.Requests) == 0 {
		logrus.Warn("Empty request queue: every schedule is empty and averages are undefined")
	}
	logrus.Infof("Scheduling %d requests, head=%d, direction=%s, disk-size=%d, algorithms=%v",
		len(sc.Requests), sc.Head, sc.Direction, sc.DiskSize, sc.AlgorithmNames())

	startTime := time.Now()
	results := sc.Run()
	for _, res := range results {
		logrus.Debugf("%s: order=%v total=%d", res.Algorithm, res.Order, res.Total)
	}

	geo := sc.Geometry()
	rep := report.New(report.Input{
		Requests:  sc.Requests,
		Head:      sc.Head,
		Direction: geo.Direction,
		DiskSize:  geo.DiskSize,
	}, results)
	logrus.Infof("Report %s: best=%v (%s)", rep.ID, rep.Best, time.Since(startTime))
	return rep.Render(w, opts)
}

// algorithmsCmd lists the registered scheduling algorithms
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List available scheduling algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sim.SchedulerNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	registerRunFlags(runCmd.Flags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(algorithmsCmd)
}
