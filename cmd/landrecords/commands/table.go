package commands

import (
	"fmt"
	"io"
	"landrecords/lib/report"
	"landrecords/lib/scrapers/landrecords"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// formatElapsed renders a duration as h:mm:ss.ss
func formatElapsed(d time.Duration) string {
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	return fmt.Sprintf("%d:%02d:%05.2f", hours, minutes, d.Seconds())
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	return t
}

func renderFailures(out io.Writer, failures []landrecords.Failure) {
	t := newTable(out)
	t.SetTitle("Skipped parcels")
	t.AppendHeader(table.Row{"Street", "Serial", "Kind", "Error"})
	for _, f := range failures {
		serial := f.Serial
		if serial == "" {
			serial = f.Link
		}
		t.AppendRow(table.Row{f.Street, serial, f.Kind, f.Err.Error()})
	}
	t.Render()
}

func renderTypes(out io.Writer, counts []report.TypeCount) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Type", "Documents"})
	total := 0
	for _, c := range counts {
		t.AppendRow(table.Row{c.Type, c.Count})
		total += c.Count
	}
	t.AppendFooter(table.Row{"Total", total})
	t.Render()
}
