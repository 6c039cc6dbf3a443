package clean

import (
	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

// fillGaps forward-fills empty or unreadable cells from the last known-good
// value in the same column. Removed rows are invisible here: never read
// into the known-good vector, never filled from it. A column with no good
// value yet falls back to "0.000", which zero-fills leading blanks on the
// first kept row. Returns how many cells were rewritten.
func fillGaps(t *rcplog.Table) int {
	filled := 0
	lastGood := make([]string, t.Width())
	for _, row := range t.Rows {
		if row.Removed {
			continue
		}
		for col, cell := range row.Cells {
			if isNumeric(cell) {
				lastGood[col] = cell
				continue
			}
			if isNumeric(lastGood[col]) {
				row.Cells[col] = lastGood[col]
			} else {
				row.Cells[col] = "0.000"
			}
			filled++
		}
	}
	return filled
}
