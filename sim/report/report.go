// Package report turns scheduling results into comparison reports: guarded
// averages, a summary table, per-algorithm text charts and JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/inference-sim/seek-sim/sim"
	"github.com/inference-sim/seek-sim/sim/trace"
)

// Output formats accepted by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ValidFormats is the set of recognized output formats.
var ValidFormats = map[string]bool{FormatTable: true, FormatJSON: true}

// Input echoes the scheduling inputs into the report.
type Input struct {
	Requests  []int
	Head      int
	Direction sim.Direction
	DiskSize  int
}

// Row is one algorithm's outcome.
type Row struct {
	Algorithm      string              `json:"algorithm"`
	Order          []int               `json:"order"`
	Path           []int               `json:"path"`
	TotalSeek      int                 `json:"total_seek"`
	AverageSeek    float64             `json:"average_seek"`
	AverageDefined bool                `json:"average_defined"` // false for an empty queue
	Summary        *trace.TraceSummary `json:"summary"`
	Trace          *trace.SeekTrace    `json:"trace,omitempty"`
}

// Report compares several algorithms on the same inputs.
type Report struct {
	ID        string   `json:"id"`
	Requests  []int    `json:"requests"`
	Head      int      `json:"head"`
	Direction string   `json:"direction"`
	DiskSize  int      `json:"disk_size"`
	Rows      []Row    `json:"rows"`
	Best      []string `json:"best"` // algorithms sharing the lowest total seek
}

// AverageSeek returns total/count. The average of an empty queue is
// undefined: it returns 0 and false rather than dividing by zero.
func AverageSeek(total, count int) (float64, bool) {
	if count == 0 {
		return 0, false
	}
	return float64(total) / float64(count), true
}

// New builds a Report. Rows follow the order of results.
func New(in Input, results []sim.Result) *Report {
	r := &Report{
		ID:        "rpt_" + uuid.New().String()[:8],
		Requests:  append([]int{}, in.Requests...),
		Head:      in.Head,
		Direction: string(in.Direction),
		DiskSize:  in.DiskSize,
		Rows:      make([]Row, 0, len(results)),
		Best:      []string{},
	}
	best := -1
	for _, res := range results {
		avg, ok := AverageSeek(res.Total, len(in.Requests))
		r.Rows = append(r.Rows, Row{
			Algorithm:      res.Algorithm,
			Order:          res.Order,
			Path:           res.Path(),
			TotalSeek:      res.Total,
			AverageSeek:    avg,
			AverageDefined: ok,
			Summary:        trace.Summarize(res.Trace),
			Trace:          res.Trace,
		})
		switch {
		case best < 0 || res.Total < best:
			best = res.Total
			r.Best = []string{res.Algorithm}
		case res.Total == best:
			r.Best = append(r.Best, res.Algorithm)
		}
	}
	return r
}

// Options control Render.
type Options struct {
	Format     string // FormatTable (default) or FormatJSON
	Chart      bool   // include a head-movement chart per algorithm (table format only)
	ChartWidth int    // columns used for the cylinder axis; 0 means DefaultChartWidth
}

// Render writes the report in the requested format.
func (r *Report) Render(w io.Writer, opts Options) error {
	switch opts.Format {
	case "", FormatTable:
		if err := r.WriteDetails(w); err != nil {
			return err
		}
		if opts.Chart {
			for _, row := range r.Rows {
				if err := WriteChart(w, row, r.DiskSize, opts.ChartWidth); err != nil {
					return err
				}
			}
		}
		return r.WriteTable(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unknown output format %q; valid: table, json", opts.Format)
	}
}

// displayName renders a registry name the way it is usually written.
func displayName(algorithm string) string {
	return strings.ToUpper(algorithm)
}
