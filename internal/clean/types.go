package clean

import (
	"time"
)

// Config holds the cleaning pipeline parameters. The value is immutable for
// the duration of a run.
type Config struct {
	// MinSatellites is the satellite count below which a GPS fix is
	// considered noise and blanked (cleanup mode only).
	MinSatellites int

	// GPSCleanup selects how rows before the first plausible fix are
	// handled: true removes them, false backfills them with the first fix.
	GPSCleanup bool
}

// DefaultConfig returns the parameters the stock converter runs with.
func DefaultConfig() Config {
	return Config{
		MinSatellites: 4,    // below this the receiver is still hunting
		GPSCleanup:    true, // trim pre-lock rows
	}
}

// Stats represents cleaning results and metrics for one session.
type Stats struct {
	// Input
	TotalRows int `json:"total_rows"`

	// Per-pass effects
	JunkRows         int `json:"junk_rows_removed"`
	LowSatRows       int `json:"low_satellite_rows_blanked"`
	PreFixRows       int `json:"pre_fix_rows_removed"`
	BackfilledRows   int `json:"pre_fix_rows_backfilled"`
	FilledCells      int `json:"cells_gap_filled"`
	InterpolatedRows int `json:"timestamps_interpolated"`
	ConvertedRows    int `json:"coordinate_rows_converted"`

	// Results
	KeptRows       int     `json:"kept_rows"`
	RemovedRows    int     `json:"removed_rows"`
	SessionSeconds float64 `json:"session_seconds"`

	// Performance
	ProcessingTime time.Duration `json:"processing_time_ms"`
}
