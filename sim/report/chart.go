package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/inference-sim/seek-sim/sim/trace"
)

// DefaultChartWidth is the number of plot columns; the head path is
// interpolated across them.
const DefaultChartWidth = 60

// DefaultChartHeight is the number of plot rows spanning cylinders 0..diskSize-1.
const DefaultChartHeight = 10

// WriteChart plots the head path of row as cylinder over step, with the
// y axis pinned to the whole disk. A path line follows the plot; boundary and
// wrap positions appear in brackets there.
func WriteChart(w io.Writer, row Row, diskSize int, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}
	path := row.Path
	if len(path) == 0 && row.Trace != nil {
		path = row.Trace.Path()
	}
	if len(path) == 0 {
		return nil
	}

	series := make([]float64, len(path))
	for i, c := range path {
		series[i] = float64(c)
	}
	plot := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(DefaultChartHeight),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(float64(max(diskSize-1, 0))),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s head movement (cylinder by step)", displayName(row.Algorithm))),
	)
	_, err := fmt.Fprintf(w, "%s\npath: %s\n\n", plot, pathLegend(row, path))
	return err
}

// pathLegend lists every head position in order. Positions reached by a
// boundary or wrap move are bracketed; rows without a trace list path as-is.
func pathLegend(row Row, path []int) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = strconv.Itoa(c)
	}
	if row.Trace != nil && len(row.Trace.Moves) == len(path)-1 {
		for i, m := range row.Trace.Moves {
			if m.Kind != trace.KindService {
				parts[i+1] = "[" + parts[i+1] + "]"
			}
		}
	}
	return strings.Join(parts, " ")
}
