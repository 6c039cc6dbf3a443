package clean

import (
	"testing"

	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

func TestHasPlausibleFix(t *testing.T) {
	schema := Schema{Time: -1, Lat: 0, Lon: 1, Sats: -1}
	cases := []struct {
		lat, lon string
		want     bool
	}{
		{"45.100000", "-73.200000", true},
		{"0", "0", false},
		{"0.000000", "0.000000", false},
		{"0", "-73.200000", true},
		{"45.100000", "0", true},
		{"", "-73.200000", false},
		{"45.100000", "", false},
		{"abc", "-73.200000", false},
	}

	for _, tc := range cases {
		row := &rcplog.Row{Cells: []string{tc.lat, tc.lon}}
		if got := hasPlausibleFix(row, schema); got != tc.want {
			t.Errorf("hasPlausibleFix(%q, %q) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestFilterLowSatRows(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "45.100000", "-73.200000", "3"},
		[]string{"2", "45.100100", "-73.200100", "4"},
		[]string{"3", "45.100200", "-73.200200", ""},
		[]string{"4", "45.100300", "-73.200300", "2"},
	)
	table.Rows[3].Removed = true
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	blanked := c.filterLowSatRows(table, schema)

	if blanked != 1 {
		t.Errorf("Expected 1 row blanked, got %d", blanked)
	}
	if table.Rows[0].Cells[1] != "" || table.Rows[0].Cells[2] != "" {
		t.Errorf("Below-threshold row not blanked: %v", table.Rows[0].Cells)
	}
	if table.Rows[1].Cells[1] != "45.100100" {
		t.Error("Row at the threshold must keep its coordinates")
	}
	if table.Rows[2].Cells[1] != "45.100200" {
		t.Error("Row with an unreadable satellite count must keep its coordinates")
	}
	if table.Rows[3].Cells[1] != "45.100300" {
		t.Error("Removed rows are outside the filter's reach")
	}
}

func TestTrimPreFix(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "0", "0", "0"},
		[]string{"2", "", "", "1"},
		[]string{"3", "45.100000", "-73.200000", "6"},
		[]string{"4", "0", "0", "0"},
	)
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	trimmed := c.trimPreFix(table, schema)

	if trimmed != 2 {
		t.Errorf("Expected 2 rows trimmed, got %d", trimmed)
	}
	if !table.Rows[0].Removed || !table.Rows[1].Removed {
		t.Error("Rows before the first fix must be removed")
	}
	if table.Rows[2].Removed {
		t.Error("First fix row must survive")
	}
	if table.Rows[3].Removed {
		t.Error("Trimming stops at the first fix, mid-session dropouts stay")
	}
}

func TestTrimPreFixSkipsJunkRows(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "45.100000", "-73.200000", "6"},
		[]string{"2", "0", "0", "0"},
		[]string{"3", "45.100100", "-73.200100", "6"},
	)
	table.Rows[0].Removed = true
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	trimmed := c.trimPreFix(table, schema)

	// The removed first row has fix-like coordinates but cannot end the
	// scan; only the live second row counts against the trim.
	if trimmed != 1 {
		t.Errorf("Expected 1 row trimmed, got %d", trimmed)
	}
	if !table.Rows[1].Removed {
		t.Error("Pre-fix row must be removed")
	}
	if table.Rows[2].Removed {
		t.Error("First live fix must survive")
	}
}

func TestTrimPreFixNoFixAnywhere(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "0", "0", "0"},
		[]string{"2", "", "", "1"},
	)
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	if trimmed := c.trimPreFix(table, schema); trimmed != 2 {
		t.Errorf("Expected every row trimmed, got %d", trimmed)
	}
}

func TestBackfillPreFix(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "0", "0", "0"},
		[]string{"2", "", "", "2"},
		[]string{"3", "45.100000", "-73.200000", "6"},
		[]string{"4", "45.100100", "-73.200100", "7"},
	)
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	backfilled := c.backfillPreFix(table, schema)

	if backfilled != 2 {
		t.Errorf("Expected 2 rows backfilled, got %d", backfilled)
	}
	for i := 0; i < 2; i++ {
		if table.Rows[i].Cells[1] != "45.100000" || table.Rows[i].Cells[2] != "-73.200000" {
			t.Errorf("Row %d not backfilled: %v", i+1, table.Rows[i].Cells)
		}
	}
	if table.Rows[3].Cells[1] != "45.100100" {
		t.Error("Rows after the first fix must be untouched")
	}
	if table.RemovedCount() != 0 {
		t.Error("Backfilling must not remove rows")
	}
}

func TestBackfillPreFixKeepsRemovalTags(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "0", "0", "0"},
		[]string{"2", "45.100000", "-73.200000", "6"},
	)
	table.Rows[0].Removed = true
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	c.backfillPreFix(table, schema)

	if !table.Rows[0].Removed {
		t.Error("Backfilling must not resurrect removed rows")
	}
	if table.Rows[0].Cells[1] != "45.100000" {
		t.Error("Removed rows before the fix still receive coordinates")
	}
}

func TestBackfillPreFixNoFix(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "0", "0", "0"},
		[]string{"2", "0", "0", "1"},
	)
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	if backfilled := c.backfillPreFix(table, schema); backfilled != 0 {
		t.Errorf("Expected no backfill without a fix, got %d", backfilled)
	}
	if table.Rows[0].Cells[1] != "0" {
		t.Error("Cells must be untouched when no fix exists")
	}
}

func TestBackfillPreFixFixAtFirstRow(t *testing.T) {
	table := buildTable(
		[]string{"Time", "Latitude", "Longitude", "GpsSats"},
		[]string{"1", "45.100000", "-73.200000", "6"},
	)
	c := New(DefaultConfig(), nil)
	schema := ResolveSchema(table.Header)

	if backfilled := c.backfillPreFix(table, schema); backfilled != 0 {
		t.Errorf("Expected no backfill when the session opens with a fix, got %d", backfilled)
	}
}
