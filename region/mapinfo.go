package region

import (
	"strconv"
	"strings"
)

// MapInfo is the geo-referencing metadata relating pixel coordinates to
// projected map coordinates: a reference pixel (1-based, per the ENVI
// convention), the map coordinate of that pixel and the ground size of
// one pixel.
//
// Zone, Area, Datum and Units are optional; the zero value of each means
// the header did not supply it. Rotation is carried for completeness but
// never applied: coordinate derivation assumes a north-up raster.
type MapInfo struct {
	ProjectionName  string
	XReferencePixel float64
	YReferencePixel float64
	XZeroCoordinate float64
	YZeroCoordinate float64
	XPixelSize      float64
	YPixelSize      float64
	Zone            int
	Area            string
	Datum           string
	Units           string
	Rotation        float64
}

// ProjectionDescription composes the projection fields into a single
// space-separated string, e.g. "UTM 4 North WGS-84". Fields the header
// did not supply are omitted.
func (m *MapInfo) ProjectionDescription() string {
	parts := make([]string, 0, 4)
	if m.ProjectionName != "" {
		parts = append(parts, m.ProjectionName)
	}
	if m.Zone != 0 {
		parts = append(parts, strconv.Itoa(m.Zone))
	}
	if m.Area != "" {
		parts = append(parts, m.Area)
	}
	if m.Datum != "" {
		parts = append(parts, m.Datum)
	}
	return strings.Join(parts, " ")
}
