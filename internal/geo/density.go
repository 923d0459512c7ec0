package geo

import "math"

// City is one entry of the reference population-density table.
type City struct {
	Name    string
	Lat     float64
	Lon     float64
	Density float64 // people/km^2
}

// cityCatchmentKM is the radius within which a point adopts a reference
// city's density.
const cityCatchmentKM = 100.0

// kmPerDegree is the equirectangular degree-to-kilometer factor.
const kmPerDegree = 111.0

// defaultCities is the reference density table. First match wins; given the
// 100 km catchment and the spacing of these cities, catchments never overlap.
var defaultCities = []City{
	{Name: "New York", Lat: 40.7128, Lon: -74.0060, Density: 10947},
	{Name: "Tokyo", Lat: 35.6762, Lon: 139.6503, Density: 6158},
	{Name: "London", Lat: 51.5074, Lon: -0.1278, Density: 5701},
	{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777, Density: 20694},
	{Name: "Sao Paulo", Lat: -23.5505, Lon: -46.6333, Density: 7216},
}

// Latitude-band fallback densities when no reference city is near.
const (
	FallbackUrban    = "Default Urban"
	FallbackSuburban = "Default Suburban"
	FallbackRural    = "Default Rural"
)

var fallbackDensities = map[string]float64{
	FallbackUrban:    1000,
	FallbackSuburban: 300,
	FallbackRural:    10,
}

// flatDistanceKM approximates the distance between two points with an
// equirectangular projection. Good enough at the 100 km scale used here.
func flatDistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * kmPerDegree
	dLon := (lon2 - lon1) * kmPerDegree * math.Cos(lat1*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLon*dLon)
}
