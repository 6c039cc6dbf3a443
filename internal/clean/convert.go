package clean

import (
	"math"
	"strconv"

	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

// degToRad is the degree-to-radian factor applied to GPS coordinates.
const degToRad = math.Pi / 180

// convertCoordinates rewrites latitude and longitude from degrees to
// radians at the 13-decimal precision the downstream tool reads. Cells that
// no longer parse (blanked coordinates on removed rows) are left alone.
// Returns how many rows had both coordinates converted.
func convertCoordinates(t *rcplog.Table, schema Schema) int {
	converted := 0
	for _, row := range t.Rows {
		lat, okLat := ParseNumeric(row.Cells[schema.Lat])
		lon, okLon := ParseNumeric(row.Cells[schema.Lon])
		if okLat {
			row.Cells[schema.Lat] = strconv.FormatFloat(lat*degToRad, 'f', 13, 64)
		}
		if okLon {
			row.Cells[schema.Lon] = strconv.FormatFloat(lon*degToRad, 'f', 13, 64)
		}
		if okLat && okLon {
			converted++
		}
	}
	return converted
}
