package clean

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

// timeState carries the rolling state of the wall-clock normalizer across
// one scan of the table.
type timeState struct {
	base         float64 // session start, seconds since midnight
	baseSet      bool
	lastRaw      float64 // last raw HHMMSS value seen
	lastSet      bool
	pastMidnight bool // monotone: once set, stays set
}

// wallClockSeconds converts a raw HHMMSS[.fraction] value to seconds since
// midnight. Integer math supplies the implicit leading zeros of values
// below 100000, so 1230 reads as 00:12:30 rather than a count of seconds.
func wallClockSeconds(v float64) float64 {
	whole := int(v)
	frac := v - float64(whole)
	hours := whole / 10000
	minutes := (whole % 10000) / 100
	seconds := whole % 100
	return float64(hours*3600+minutes*60+seconds) + frac
}

// normalizeTimes rewrites the timestamp column from wall-clock HHMMSS to
// seconds elapsed since the first kept sample, formatted to 3 decimals.
// Sessions that cross midnight get 86400 added once the clock wraps; a
// session is assumed not to run past 10:00 the next day. Rows with a
// non-numeric timestamp are left for the gap filler, and removed rows are
// skipped without reading or updating any state.
func (c *Cleaner) normalizeTimes(t *rcplog.Table) error {
	var st timeState
	for _, row := range t.Rows {
		if row.Removed {
			continue
		}
		raw, ok := ParseNumeric(row.Cells[0])
		if !ok {
			continue
		}

		if st.lastSet && st.lastRaw >= 230000 && raw < 100000 {
			if !st.pastMidnight {
				c.log.Debug("midnight rollover detected",
					zap.Float64("last_raw", st.lastRaw),
					zap.Float64("current_raw", raw))
			}
			st.pastMidnight = true
		}

		abs := wallClockSeconds(raw)
		if !st.baseSet {
			st.base = abs
			st.baseSet = true
			row.Cells[0] = "0.000"
		} else {
			if st.pastMidnight {
				abs += 86400
			}
			row.Cells[0] = strconv.FormatFloat(abs-st.base, 'f', 3, 64)
		}
		st.lastRaw = raw
		st.lastSet = true
	}

	if !st.baseSet {
		return &DataError{Reason: "no row yielded a numeric timestamp"}
	}
	return nil
}

// interpolateTimes spreads runs of identical timestamps evenly so every
// kept sample carries a distinct, strictly increasing time. Removed rows
// never start a run and never end one, but they do count toward the run
// length, so the spread matches the recording cadence. A run still open at
// the end of the table is spread across one nominal second, the wall-clock
// channel's tick. Returns how many timestamps were rewritten.
func interpolateTimes(t *rcplog.Table) int {
	rewritten := 0
	rows := t.Rows
	for i := 0; i < len(rows); {
		if rows[i].Removed {
			i++
			continue
		}
		start, ok := ParseNumeric(rows[i].Cells[0])
		if !ok {
			i++
			continue
		}

		// Find the last row still holding the same value and the next
		// distinct value after the run.
		last := i
		next := 0.0
		haveNext := false
		for j := i + 1; j < len(rows); j++ {
			if rows[j].Removed {
				continue
			}
			v, ok := ParseNumeric(rows[j].Cells[0])
			if !ok {
				break
			}
			if v != start {
				next = v
				haveNext = true
				break
			}
			last = j
		}

		if runLen := last - i + 1; runLen > 1 {
			span := 1.0
			if haveNext {
				span = next - start
			}
			inc := span / float64(runLen)
			for k := i + 1; k <= last; k++ {
				if rows[k].Removed {
					continue
				}
				rows[k].Cells[0] = strconv.FormatFloat(start+inc*float64(k-i), 'f', 3, 64)
				rewritten++
			}
		}
		i = last + 1
	}
	return rewritten
}
