package rcplog

// Row is one data record of a session log: its cell values plus an
// out-of-band removal mark. The mark is never stored as a cell, so the
// cell count always matches the header.
type Row struct {
	Cells   []string
	Removed bool
}

// Table is a parsed logger session: one header row of channel names
// followed by data rows in recording order.
type Table struct {
	Header []string
	Rows   []*Row
}

// Width returns the number of columns defined by the header.
func (t *Table) Width() int {
	return len(t.Header)
}

// AppendRow adds a data row, padding or truncating the cells to the header
// width so every row stays index-compatible with the resolved schema.
func (t *Table) AppendRow(cells []string) {
	w := t.Width()
	switch {
	case len(cells) < w:
		padded := make([]string, w)
		copy(padded, cells)
		cells = padded
	case len(cells) > w:
		cells = cells[:w]
	}
	t.Rows = append(t.Rows, &Row{Cells: cells})
}

// KeptRows returns the data rows not marked removed, in original order.
func (t *Table) KeptRows() []*Row {
	kept := make([]*Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !row.Removed {
			kept = append(kept, row)
		}
	}
	return kept
}

// RemovedCount returns how many data rows are currently marked removed.
func (t *Table) RemovedCount() int {
	count := 0
	for _, row := range t.Rows {
		if row.Removed {
			count++
		}
	}
	return count
}
