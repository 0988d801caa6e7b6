package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/seek-sim/sim"
)

var textbook = Input{
	Requests:  []int{82, 170, 43, 140, 24, 16, 190},
	Head:      50,
	Direction: sim.DirectionLeft,
	DiskSize:  200,
}

func textbookReport() *Report {
	geo := sim.Geometry{Direction: textbook.Direction, DiskSize: textbook.DiskSize}
	return New(textbook, sim.RunAll(nil, textbook.Requests, textbook.Head, geo))
}

// rowFor returns the row for the named algorithm.
func rowFor(r *Report, algorithm string) (Row, bool) {
	name := sim.NormalizeSchedulerName(algorithm)
	for _, row := range r.Rows {
		if row.Algorithm == name {
			return row, true
		}
	}
	return Row{}, false
}

func TestAverageSeek(t *testing.T) {
	avg, ok := AverageSeek(642, 7)
	assert.True(t, ok)
	assert.InDelta(t, 91.714, avg, 0.001)

	avg, ok = AverageSeek(0, 0)
	assert.False(t, ok, "empty queue average is undefined")
	assert.Equal(t, 0.0, avg)
}

func TestNew_TextbookRows(t *testing.T) {
	r := textbookReport()

	require.Len(t, r.Rows, 4)
	assert.True(t, strings.HasPrefix(r.ID, "rpt_"))
	assert.Equal(t, textbook.Requests, r.Requests)
	assert.Equal(t, "left", r.Direction)

	fcfs, ok := rowFor(r, "FCFS")
	require.True(t, ok)
	assert.Equal(t, 642, fcfs.TotalSeek)
	assert.True(t, fcfs.AverageDefined)
	assert.InDelta(t, 642.0/7, fcfs.AverageSeek, 1e-9)
	assert.Equal(t, 4, fcfs.Summary.Reversals)

	scan, ok := rowFor(r, "scan")
	require.True(t, ok)
	assert.Equal(t, []int{50, 43, 24, 16, 0, 82, 140, 170, 190}, scan.Path)
	assert.Equal(t, 16, scan.Summary.OverheadDistance)

	assert.Equal(t, []string{"sstf"}, r.Best)
}

func TestNew_TiedBestListsAll(t *testing.T) {
	// GIVEN a queue where FCFS and SSTF produce the same schedule
	in := Input{Requests: []int{60, 70}, Head: 50, Direction: sim.DirectionRight, DiskSize: 100}
	results := sim.RunAll([]string{"fcfs", "sstf"}, in.Requests, in.Head, sim.Geometry{Direction: in.Direction, DiskSize: in.DiskSize})

	r := New(in, results)

	assert.Equal(t, []string{"fcfs", "sstf"}, r.Best)
}

func TestNew_EmptyQueue_AverageUndefined(t *testing.T) {
	in := Input{Requests: []int{}, Head: 5, Direction: sim.DirectionLeft, DiskSize: 10}
	r := New(in, sim.RunAll(nil, in.Requests, in.Head, sim.Geometry{Direction: in.Direction, DiskSize: in.DiskSize}))

	for _, row := range r.Rows {
		assert.False(t, row.AverageDefined, row.Algorithm)
		assert.Equal(t, 0, row.TotalSeek, row.Algorithm)
	}
	assert.Equal(t, sim.SchedulerNames(), r.Best)
}

func TestNew_NoResults(t *testing.T) {
	r := New(textbook, nil)
	assert.Empty(t, r.Rows)
	assert.NotNil(t, r.Best)
	assert.Empty(t, r.Best)
}

func TestRow_Unknown(t *testing.T) {
	_, ok := rowFor(textbookReport(), "look")
	assert.False(t, ok)
}

func TestRender_JSON_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, textbookReport().Render(&buf, Options{Format: FormatJSON}))

	var decoded struct {
		DiskSize int `json:"disk_size"`
		Rows     []struct {
			Algorithm      string  `json:"algorithm"`
			TotalSeek      int     `json:"total_seek"`
			AverageSeek    float64 `json:"average_seek"`
			AverageDefined bool    `json:"average_defined"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 200, decoded.DiskSize)
	require.Len(t, decoded.Rows, 4)
	assert.Equal(t, "c-scan", decoded.Rows[3].Algorithm)
	assert.Equal(t, 366, decoded.Rows[3].TotalSeek)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := textbookReport().Render(&bytes.Buffer{}, Options{Format: "csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
