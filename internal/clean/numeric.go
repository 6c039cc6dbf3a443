package clean

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumeric reports whether s is a plain signed decimal or scientific
// literal and returns its value. The empty string, hex floats,
// underscore-grouped literals, Inf and NaN are all rejected: a telemetry
// cell holding anything but an ordinary number is missing data, not a
// value. Every pass shares this one predicate.
func ParseNumeric(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	// ParseFloat implements Go literal syntax, which is wider than what a
	// logger emits.
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	return v, true
}

// isNumeric is the predicate form of ParseNumeric.
func isNumeric(s string) bool {
	_, ok := ParseNumeric(s)
	return ok
}
