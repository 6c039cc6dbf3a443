package clean

import (
	"time"

	"go.uber.org/zap"

	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

// Cleaner runs the record-cleaning pipeline over one session table.
type Cleaner struct {
	cfg Config
	log *zap.Logger
}

// New returns a Cleaner with the given configuration. A nil logger disables
// diagnostics.
func New(cfg Config, log *zap.Logger) *Cleaner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cleaner{cfg: cfg, log: log}
}

// Clean runs the pipeline over the table with the given configuration and
// no diagnostics. Shorthand for New(cfg, nil).Run(t).
func Clean(t *rcplog.Table, cfg Config) (Stats, error) {
	return New(cfg, nil).Run(t)
}

// Run executes all cleaning passes in order, mutating the table in place.
// The pass order is a contract: each pass assumes the table state the
// previous one left behind and does not re-validate it.
func (c *Cleaner) Run(t *rcplog.Table) (Stats, error) {
	startTime := time.Now()
	stats := Stats{TotalRows: len(t.Rows)}

	schema := ResolveSchema(t.Header)
	if schema.Time < 0 {
		return stats, &SchemaError{Column: timeColumn}
	}
	if c.cfg.GPSCleanup {
		// Cleanup mode runs the satellite filter, the trimmer and the
		// coordinate converter unconditionally, so all three GPS columns
		// must resolve before any row is touched.
		switch {
		case schema.Lat < 0:
			return stats, &SchemaError{Column: latColumn}
		case schema.Lon < 0:
			return stats, &SchemaError{Column: lonColumn}
		case schema.Sats < 0:
			return stats, &SchemaError{Column: satsColumn}
		}
	} else if !schema.HasGPS() {
		c.log.Info("no GPS coordinate columns resolved, GPS passes skipped")
	}

	normalizeHeader(t)
	reorderTimeFirst(t, &schema)
	stripArtifacts(t)
	stats.JunkRows = c.tagJunkRows(t)

	if c.cfg.GPSCleanup {
		stats.LowSatRows = c.filterLowSatRows(t, schema)
		stats.PreFixRows = c.trimPreFix(t, schema)
	} else if schema.HasGPS() {
		stats.BackfilledRows = c.backfillPreFix(t, schema)
	}

	if err := c.normalizeTimes(t); err != nil {
		return stats, err
	}
	stats.FilledCells = fillGaps(t)
	stats.InterpolatedRows = interpolateTimes(t)

	if schema.HasGPS() {
		stats.ConvertedRows = convertCoordinates(t, schema)
	}

	stats.RemovedRows = t.RemovedCount()
	stats.KeptRows = stats.TotalRows - stats.RemovedRows
	stats.SessionSeconds = sessionSeconds(t)
	stats.ProcessingTime = time.Since(startTime)

	c.log.Info("session cleaned",
		zap.Int("total_rows", stats.TotalRows),
		zap.Int("kept_rows", stats.KeptRows),
		zap.Int("removed_rows", stats.RemovedRows),
		zap.Float64("session_seconds", stats.SessionSeconds),
		zap.Duration("elapsed", stats.ProcessingTime))

	return stats, nil
}

// sessionSeconds reads the last kept row's elapsed timestamp.
func sessionSeconds(t *rcplog.Table) float64 {
	for i := len(t.Rows) - 1; i >= 0; i-- {
		if t.Rows[i].Removed {
			continue
		}
		if v, ok := ParseNumeric(t.Rows[i].Cells[0]); ok {
			return v
		}
		return 0
	}
	return 0
}
