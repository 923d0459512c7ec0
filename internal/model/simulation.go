// Package model defines the input and output records of the impact
// simulation pipeline and the persistence types wrapped around them.
package model

// AsteroidType selects a default bulk density when none is supplied.
type AsteroidType string

const (
	AsteroidIron  AsteroidType = "iron"
	AsteroidStone AsteroidType = "stone"
	AsteroidComet AsteroidType = "comet"
)

// DefaultDensity returns the bulk density in kg/m^3 assumed for the type.
func (t AsteroidType) DefaultDensity() float64 {
	switch t {
	case AsteroidIron:
		return 7800
	case AsteroidComet:
		return 600
	default:
		return 3000
	}
}

// AsteroidParameters describes the impactor. Density overrides the
// type default when positive.
type AsteroidParameters struct {
	Type     AsteroidType `json:"type" yaml:"type"`
	Diameter float64      `json:"diameter" yaml:"diameter"` // meters
	Speed    float64      `json:"speed" yaml:"speed"`       // m/s
	Angle    float64      `json:"angle" yaml:"angle"`       // degrees from horizontal
	Density  float64      `json:"density" yaml:"density"`   // kg/m^3
}

// EffectiveDensity resolves the density used for mass computation.
func (a AsteroidParameters) EffectiveDensity() float64 {
	if a.Density > 0 {
		return a.Density
	}
	return a.Type.DefaultDensity()
}

// ImpactLocation describes where the asteroid strikes.
type ImpactLocation struct {
	Latitude          float64 `json:"latitude" yaml:"latitude"`
	Longitude         float64 `json:"longitude" yaml:"longitude"`
	PopulationDensity float64 `json:"population_density" yaml:"population_density"` // people/km^2
	CityName          string  `json:"city_name,omitempty" yaml:"city_name,omitempty"`
}

// ZoneType identifies which physical effect a damage zone represents.
type ZoneType string

const (
	ZoneCrater    ZoneType = "crater"
	ZoneFireball  ZoneType = "fireball"
	ZoneRadiation ZoneType = "radiation"
	ZoneShockwave ZoneType = "shockwave"
	ZoneSeismic   ZoneType = "seismic"
)

// Severity drives the mortality-rate lookup for casualty estimates.
type Severity string

const (
	SeverityTotal    Severity = "total"
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityLight    Severity = "light"
)

// DamageZone is one concentric effect ring around the impact point.
type DamageZone struct {
	Type        ZoneType `json:"type"`
	Radius      float64  `json:"radius"` // meters
	Severity    Severity `json:"severity"`
	Casualties  int64    `json:"casualties"`
	Description string   `json:"description"`
}

// TsunamiResults holds the simplified ocean-impact wave estimates.
// All values are meters.
type TsunamiResults struct {
	SourceWaveHeight        float64 `json:"source_wave_height"`
	WaveHeightAt100km       float64 `json:"wave_height_at_100km"`
	PotentialRunup          float64 `json:"potential_runup"`
	AffectedCoastlineRadius float64 `json:"affected_coastline_radius"`
}

// SimulationResults aggregates every derived effect metric for one impact.
// ShockwaveRadius duplicates ShockwaveRadius20kPa for output-schema
// compatibility with older consumers.
type SimulationResults struct {
	ImpactEnergy float64 `json:"impact_energy"` // joules
	MassKg       float64 `json:"mass_kg"`

	CraterDiameter float64 `json:"crater_diameter"` // meters
	CraterDepth    float64 `json:"crater_depth"`    // meters

	FireballRadius float64 `json:"fireball_radius"` // meters
	ThermalRadius  float64 `json:"thermal_radius"`  // meters

	ShockwaveRadius      float64 `json:"shockwave_radius"` // legacy, = 20 kPa
	ShockwaveRadius50kPa float64 `json:"shockwave_radius_50kpa"`
	ShockwaveRadius20kPa float64 `json:"shockwave_radius_20kpa"`
	ShockwaveRadius5kPa  float64 `json:"shockwave_radius_5kpa"`
	PeakWindSpeed50kPa   float64 `json:"peak_wind_speed_50kpa"` // m/s

	SeismicMagnitude float64 `json:"seismic_magnitude"` // Mw
	TNTEquivalent    float64 `json:"tnt_equivalent"`    // tons

	DamageZones          []DamageZone          `json:"damage_zones"`
	EarthquakeComparison *EarthquakeComparison `json:"earthquake_comparison,omitempty"`

	ImpactSpeed float64 `json:"impact_speed"` // m/s, pass-through
	ImpactAngle float64 `json:"impact_angle"` // degrees, pass-through

	Tsunami *TsunamiResults `json:"tsunami,omitempty"` // ocean impacts only
}
