package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/gridcut/fastmin"
)

type cycleRow struct {
	cycle    int
	moves    int
	changed  int
	rejected int
	energy   float64
}

// cycleReport folds move events into one row per cycle.
type cycleReport struct {
	rows []cycleRow
}

func (r *cycleReport) observe(ev fastmin.MoveEvent) {
	if n := len(r.rows); n == 0 || r.rows[n-1].cycle != ev.Cycle {
		r.rows = append(r.rows, cycleRow{cycle: ev.Cycle})
	}
	row := &r.rows[len(r.rows)-1]
	row.moves++
	row.changed += ev.Changed
	if !ev.Accepted {
		row.rejected++
	}
	row.energy = ev.Energy
}

// render prints the cycle table with the region count of the final
// labeling in the footer.
func (r *cycleReport) render(w io.Writer, regions int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Cycle", "Moves", "Changed", "Rejected", "Energy"})
	for _, row := range r.rows {
		t.AppendRow(table.Row{row.cycle, row.moves, row.changed, row.rejected, row.energy})
	}
	t.AppendFooter(table.Row{"", "", "", "Regions", regions})
	t.Render()
}
