package clean

import (
	"go.uber.org/zap"

	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

// hasPlausibleFix reports whether a row carries GPS coordinates worth
// trusting: both numeric, and not the 0,0 sentinel receivers emit before
// lock.
func hasPlausibleFix(row *rcplog.Row, schema Schema) bool {
	lat, okLat := ParseNumeric(row.Cells[schema.Lat])
	lon, okLon := ParseNumeric(row.Cells[schema.Lon])
	if !okLat || !okLon {
		return false
	}
	return lat != 0 || lon != 0
}

// filterLowSatRows blanks the coordinates of rows whose satellite count is
// numeric and below the configured minimum. A missing or unreadable count
// means "unknown", not "bad", and leaves the row untouched.
func (c *Cleaner) filterLowSatRows(t *rcplog.Table, schema Schema) int {
	blanked := 0
	for _, row := range t.Rows {
		if row.Removed {
			continue
		}
		sats, ok := ParseNumeric(row.Cells[schema.Sats])
		if !ok || sats >= float64(c.cfg.MinSatellites) {
			continue
		}
		row.Cells[schema.Lat] = ""
		row.Cells[schema.Lon] = ""
		blanked++
	}
	return blanked
}

// trimPreFix removes the leading rows recorded before the first plausible
// GPS fix. Rows the junk tagger already removed neither stop the scan nor
// get re-tagged.
func (c *Cleaner) trimPreFix(t *rcplog.Table, schema Schema) int {
	trimmed := 0
	for i, row := range t.Rows {
		if row.Removed {
			continue
		}
		if hasPlausibleFix(row, schema) {
			c.log.Info("first GPS fix",
				zap.Int("row", i+1),
				zap.String("latitude", row.Cells[schema.Lat]),
				zap.String("longitude", row.Cells[schema.Lon]))
			break
		}
		row.Removed = true
		trimmed++
	}
	return trimmed
}

// backfillPreFix copies the first plausible fix backward over the leading
// rows instead of removing them, so non-GPS channels recorded before lock
// survive without the 0,0 teleport artifact in rendered tracks. Removal
// tags are left as they are. Returns how many rows were rewritten.
func (c *Cleaner) backfillPreFix(t *rcplog.Table, schema Schema) int {
	fixIdx := -1
	for i, row := range t.Rows {
		if row.Removed || !hasPlausibleFix(row, schema) {
			continue
		}
		fixIdx = i
		break
	}
	if fixIdx < 0 {
		c.log.Warn("no valid GPS data found in session")
		return 0
	}
	if fixIdx == 0 {
		return 0
	}

	lat := t.Rows[fixIdx].Cells[schema.Lat]
	lon := t.Rows[fixIdx].Cells[schema.Lon]
	c.log.Info("backfilling rows before first GPS fix",
		zap.Int("row", fixIdx+1),
		zap.String("latitude", lat),
		zap.String("longitude", lon))

	for _, row := range t.Rows[:fixIdx] {
		row.Cells[schema.Lat] = lat
		row.Cells[schema.Lon] = lon
	}
	return fixIdx
}
