// Package geo classifies impact coordinates as land or ocean and supplies
// population-density estimates from a small reference city table.
package geo

import (
	"math"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// box builds an XY bounds with coordinates ordered lon/lat.
func box(minLon, minLat, maxLon, maxLat float64) *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(minLon, minLat, maxLon, maxLat)
}

// defaultLandBounds are coarse continental rectangles. Membership is a pure
// OR across all boxes, so overlaps (the equatorial Africa guard inside the
// Africa box) are harmless and order carries no priority.
var defaultLandBounds = []*geom.Bounds{
	box(-168, 15, -52, 72),  // North America
	box(-82, -56, -34, 13),  // South America
	box(-18, -35, 52, 37),   // Africa
	box(-10, 36, 180, 78),   // northern Eurasia
	box(32, 5, 120, 36),     // Middle East and South Asia band
	box(8, -12, 42, 5),      // equatorial Africa overlap guard
	box(112, -44, 154, -10), // Australia
	box(-180, -90, 180, -60), // Antarctica
}

// NormalizeLongitude wraps a longitude into [-180, 180]. Non-finite input
// comes back NaN.
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	switch {
	case lon > 180:
		lon -= 360
	case lon < -180:
		lon += 360
	}
	return lon
}

// LoadBoundsFromShapefile reads polygon bounding boxes from a landmass
// shapefile so the coarse continental rectangles can be refined. Non-polygon
// records are skipped.
func LoadBoundsFromShapefile(path string) ([]*geom.Bounds, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	var bounds []*geom.Bounds
	var skipped int
	for reader.Next() {
		_, shape := reader.Shape()
		if _, ok := shape.(*shp.Polygon); !ok {
			skipped++
			continue
		}
		bb := shape.BBox()
		bounds = append(bounds, box(bb.MinX, bb.MinY, bb.MaxX, bb.MaxY))
	}

	if skipped > 0 {
		zap.L().Debug("geo: skipped non-polygon shapefile records",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return bounds, nil
}
