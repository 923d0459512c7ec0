package simulation

import (
	"math"

	"github.com/meteorlab/impact-cli/internal/geo"
	"github.com/meteorlab/impact-cli/internal/model"
	"github.com/meteorlab/impact-cli/internal/quake"
	"github.com/meteorlab/impact-cli/internal/tsunami"
)

// mortalityRates maps zone severity to the fraction of the affected
// population assumed lost. Heuristic, not physically derived.
var mortalityRates = map[model.Severity]float64{
	model.SeverityTotal:    0.95,
	model.SeveritySevere:   0.75,
	model.SeverityModerate: 0.25,
	model.SeverityLight:    0.05,
}

// seismicZoneFactor sizes the outermost shaking ring off the 20 kPa radius.
const seismicZoneFactor = 2.0

// Engine runs the impact pipeline. It holds no mutable state; a single
// Engine is safe for arbitrarily many concurrent callers.
type Engine struct {
	geo *geo.Classifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier injects a geography classifier, e.g. one extended with
// shapefile-derived land bounds.
func WithClassifier(c *geo.Classifier) Option {
	return func(e *Engine) {
		e.geo = c
	}
}

// NewEngine creates an Engine over the default geography tables.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.geo == nil {
		e.geo = geo.NewClassifier()
	}
	return e
}

// Run computes every effect metric for one impact. It is deterministic,
// performs no I/O, and never fails: degenerate inputs propagate as
// degenerate numbers (zero energy, NaN magnitude) rather than errors.
func (e *Engine) Run(asteroid model.AsteroidParameters, location model.ImpactLocation) *model.SimulationResults {
	density := asteroid.EffectiveDensity()

	mass := Mass(asteroid.Diameter, density)
	energy := KineticEnergy(mass, asteroid.Speed)

	craterDiameter := CraterDiameter(density, asteroid.Diameter, asteroid.Speed)
	fireball := FireballRadius(energy)

	shock50 := OverpressureRadius(energy, OverpressureSevere)
	shock20 := OverpressureRadius(energy, OverpressureModerate)
	shock5 := OverpressureRadius(energy, OverpressureLight)

	magnitude := SeismicMagnitude(energy)

	results := &model.SimulationResults{
		ImpactEnergy: energy,
		MassKg:       mass,

		CraterDiameter: craterDiameter,
		CraterDepth:    craterDepthFraction * craterDiameter,

		FireballRadius: fireball,
		ThermalRadius:  thermalFactor * fireball,

		ShockwaveRadius:      shock20,
		ShockwaveRadius50kPa: shock50,
		ShockwaveRadius20kPa: shock20,
		ShockwaveRadius5kPa:  shock5,
		PeakWindSpeed50kPa:   PeakWindSpeed(OverpressureSevere),

		SeismicMagnitude: magnitude,
		TNTEquivalent:    TNTEquivalentTons(energy),

		ImpactSpeed: asteroid.Speed,
		ImpactAngle: asteroid.Angle,
	}

	results.DamageZones = buildDamageZones(results, location.PopulationDensity)
	results.EarthquakeComparison = quake.Compare(magnitude)

	if e.geo.IsLikelyOcean(location.Latitude, location.Longitude, location.CityName) {
		results.Tsunami = tsunami.Estimate(energy, craterDiameter)
	}

	return results
}

// buildDamageZones assembles the five fixed effect rings in insertion order
// crater, fireball, radiation, shockwave, seismic.
func buildDamageZones(r *model.SimulationResults, popDensity float64) []model.DamageZone {
	zones := []model.DamageZone{
		{
			Type:        model.ZoneCrater,
			Radius:      r.CraterDiameter / 2,
			Severity:    model.SeverityTotal,
			Description: "Crater zone: complete excavation, no survival",
		},
		{
			Type:        model.ZoneFireball,
			Radius:      r.FireballRadius,
			Severity:    model.SeveritySevere,
			Description: "Fireball: incineration and ignition of structures",
		},
		{
			Type:        model.ZoneRadiation,
			Radius:      r.ThermalRadius,
			Severity:    model.SeverityModerate,
			Description: "Thermal radiation: third-degree burns to exposed skin",
		},
		{
			Type:        model.ZoneShockwave,
			Radius:      r.ShockwaveRadius20kPa,
			Severity:    model.SeverityModerate,
			Description: "Shockwave: widespread structural collapse",
		},
		{
			Type:        model.ZoneSeismic,
			Radius:      seismicZoneFactor * r.ShockwaveRadius20kPa,
			Severity:    model.SeverityLight,
			Description: "Seismic shaking: damage to vulnerable structures",
		},
	}

	for i := range zones {
		zones[i].Casualties = estimateCasualties(popDensity, zones[i].Radius, zones[i].Severity)
	}
	return zones
}

// estimateCasualties applies density x area x mortality over the full disc.
func estimateCasualties(popDensity, radiusM float64, severity model.Severity) int64 {
	radiusKM := radiusM / 1000
	affected := popDensity * math.Pi * radiusKM * radiusKM * mortalityRates[severity]
	if math.IsNaN(affected) || affected < 0 {
		return 0
	}
	return int64(math.Round(affected))
}
