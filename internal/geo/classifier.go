package geo

import (
	"math"
	"strings"

	"github.com/twpayne/go-geom"
)

// placeholderPrefix marks auto-generated location labels. A city name with
// this prefix is not evidence of a real population center.
const placeholderPrefix = "Location ("

// DensityEstimate is the result of a population-density lookup.
type DensityEstimate struct {
	Density  float64 `json:"density"` // people/km^2
	CityName string  `json:"city_name"`
}

// Classifier decides land vs. ocean and estimates population density.
// The zero configuration uses the built-in continental boxes and city table;
// both tables are read-only after construction.
type Classifier struct {
	land   []*geom.Bounds
	cities []City
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithExtraLandBounds appends additional land boxes, typically loaded from a
// shapefile via LoadBoundsFromShapefile.
func WithExtraLandBounds(bounds []*geom.Bounds) Option {
	return func(c *Classifier) {
		c.land = append(c.land, bounds...)
	}
}

// WithCities replaces the reference city table.
func WithCities(cities []City) Option {
	return func(c *Classifier) {
		c.cities = cities
	}
}

// NewClassifier builds a Classifier over the default reference tables.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		land:   append([]*geom.Bounds(nil), defaultLandBounds...),
		cities: defaultCities,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsLikelyOcean reports whether the point is open ocean. A non-placeholder
// city name forces a land classification regardless of geometry.
func (c *Classifier) IsLikelyOcean(lat, lon float64, cityName string) bool {
	if cityName != "" && !strings.HasPrefix(cityName, placeholderPrefix) {
		return false
	}

	pt := geom.Coord{NormalizeLongitude(lon), lat}
	for _, b := range c.land {
		if b.OverlapsPoint(geom.XY, pt) {
			return false
		}
	}
	return true
}

// PopulationDensity estimates people/km^2 at a point. Points within the city
// catchment adopt that city's density; everything else falls back to a
// latitude band.
func (c *Classifier) PopulationDensity(lat, lon float64) DensityEstimate {
	for _, city := range c.cities {
		if flatDistanceKM(lat, lon, city.Lat, city.Lon) <= cityCatchmentKM {
			return DensityEstimate{Density: city.Density, CityName: city.Name}
		}
	}

	band := FallbackRural
	switch {
	case math.Abs(lat) < 30:
		band = FallbackUrban
	case math.Abs(lat) < 60:
		band = FallbackSuburban
	}
	return DensityEstimate{Density: fallbackDensities[band], CityName: band}
}
