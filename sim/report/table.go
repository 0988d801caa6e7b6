package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// WriteDetails writes the service order, total and average of every row.
func (r *Report) WriteDetails(w io.Writer) error {
	for _, row := range r.Rows {
		_, err := fmt.Fprintf(w, "%s\n  Order of head movement : %s\n  Total seek distance    : %s\n  Average seek distance  : %s\n\n",
			displayName(row.Algorithm),
			formatOrder(row.Order),
			humanize.Comma(int64(row.TotalSeek)),
			formatAverage(row))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes the summary comparison table.
func (r *Report) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Summary comparison"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Total Seek", "Average Seek", "Edge Overhead", "Reversals"})
	table.SetAutoWrapText(false)
	for _, row := range r.Rows {
		overhead, reversals := 0, 0
		if row.Summary != nil {
			overhead, reversals = row.Summary.OverheadDistance, row.Summary.Reversals
		}
		table.Append([]string{
			displayName(row.Algorithm),
			humanize.Comma(int64(row.TotalSeek)),
			formatAverage(row),
			humanize.Comma(int64(overhead)),
			fmt.Sprint(reversals),
		})
	}
	best := make([]string, len(r.Best))
	for i, name := range r.Best {
		best[i] = displayName(name)
	}
	table.SetFooter([]string{"Best", strings.Join(best, " / "), "", "", ""})
	table.Render()
	return nil
}

func formatOrder(order []int) string {
	parts := make([]string, len(order))
	for i, c := range order {
		parts[i] = fmt.Sprint(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatAverage(row Row) string {
	if !row.AverageDefined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", row.AverageSeek)
}
