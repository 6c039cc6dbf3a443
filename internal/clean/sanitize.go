package clean

import (
	"strings"

	"go.uber.org/zap"

	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

// normalizeHeader strips the decoration RaceCapture puts on channel names:
// everything from the first "|" on is a unit annotation, and the remaining
// text carries the export's quote characters, which the reader's plain
// comma split keeps verbatim.
func normalizeHeader(t *rcplog.Table) {
	for i, name := range t.Header {
		if bar := strings.Index(name, "|"); bar >= 0 {
			name = name[:bar]
		}
		t.Header[i] = strings.ReplaceAll(name, `"`, "")
	}
}

// reorderTimeFirst swaps the timestamp column into position 0 for the
// header and every data row, then remaps the schema so the resolved indices
// keep pointing at the right columns. From here on index 0 is the
// timestamp.
func reorderTimeFirst(t *rcplog.Table, schema *Schema) {
	from := schema.Time
	if from == 0 {
		return
	}
	t.Header[0], t.Header[from] = t.Header[from], t.Header[0]
	for _, row := range t.Rows {
		row.Cells[0], row.Cells[from] = row.Cells[from], row.Cells[0]
	}
	schema.remapSwap(0, from)
}

// stripArtifacts removes stray carriage returns from every cell, header
// included. Corrupted logs embed them mid-cell, where they would make an
// otherwise numeric value unparseable.
func stripArtifacts(t *rcplog.Table) {
	for i, name := range t.Header {
		t.Header[i] = strings.ReplaceAll(name, "\r", "")
	}
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			row.Cells[i] = strings.ReplaceAll(cell, "\r", "")
		}
	}
}

// tagJunkRows marks every row holding a non-empty, non-numeric cell as
// removed. Rows of only empty cells stay: those are gaps, not corruption.
// This runs early so later last-known-good and first-fix logic never reads
// a corrupted value.
func (c *Cleaner) tagJunkRows(t *rcplog.Table) int {
	tagged := 0
	for i, row := range t.Rows {
		if row.Removed {
			continue
		}
		for col, cell := range row.Cells {
			if cell == "" || isNumeric(cell) {
				continue
			}
			row.Removed = true
			tagged++
			c.log.Warn("junk row removed",
				zap.Int("row", i+1),
				zap.Int("column", col),
				zap.String("value", cell))
			break
		}
	}
	return tagged
}
