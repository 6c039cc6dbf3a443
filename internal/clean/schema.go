package clean

import "strings"

// Column-name fragments the logger is known to emit. Matching is
// case-sensitive first-hit substring search over the raw header text, so
// decorated names like `"Latitude"|"deg"` still resolve.
const (
	timeColumn = "Time"
	latColumn  = "Latitude"
	lonColumn  = "Longitude"
	satsColumn = "GpsSats"
)

// Schema holds the resolved column indices for the channels the pipeline
// cares about. Unresolved columns are -1.
type Schema struct {
	Time int
	Lat  int
	Lon  int
	Sats int
}

// ResolveSchema scans the header left to right and records the first column
// containing each known fragment. Resolution happens once, before any header
// rewriting, and the indices stay authoritative for the rest of the
// pipeline.
func ResolveSchema(header []string) Schema {
	s := Schema{Time: -1, Lat: -1, Lon: -1, Sats: -1}
	for i, name := range header {
		if s.Time == -1 && strings.Contains(name, timeColumn) {
			s.Time = i
		}
		if s.Lat == -1 && strings.Contains(name, latColumn) {
			s.Lat = i
		}
		if s.Lon == -1 && strings.Contains(name, lonColumn) {
			s.Lon = i
		}
		if s.Sats == -1 && strings.Contains(name, satsColumn) {
			s.Sats = i
		}
	}
	return s
}

// HasGPS reports whether both coordinate columns resolved.
func (s Schema) HasGPS() bool {
	return s.Lat >= 0 && s.Lon >= 0
}

// remapSwap updates the resolved indices after columns a and b trade
// places.
func (s *Schema) remapSwap(a, b int) {
	for _, idx := range []*int{&s.Time, &s.Lat, &s.Lon, &s.Sats} {
		switch *idx {
		case a:
			*idx = b
		case b:
			*idx = a
		}
	}
}
