package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteorlab/impact-cli/internal/model"
)

var (
	testAsteroid = model.AsteroidParameters{
		Type:     model.AsteroidIron,
		Diameter: 457,
		Speed:    17000,
		Angle:    45,
		Density:  7800,
	}
	newYork = model.ImpactLocation{
		Latitude:          40.7128,
		Longitude:         -74.006,
		PopulationDensity: 10947,
		CityName:          "New York",
	}
	midPacific = model.ImpactLocation{
		Latitude:  0,
		Longitude: -150,
	}
)

func TestRun_NewYorkScenario(t *testing.T) {
	r := NewEngine().Run(testAsteroid, newYork)

	assert.Greater(t, r.MassKg, 0.0)
	assert.Greater(t, r.ImpactEnergy, 0.0)
	assert.Greater(t, r.CraterDiameter, 0.0)
	assert.InDelta(t, 0.2*r.CraterDiameter, r.CraterDepth, 1e-9)

	assert.True(t, r.SeismicMagnitude > 0 && !math.IsInf(r.SeismicMagnitude, 0) && !math.IsNaN(r.SeismicMagnitude),
		"magnitude must be positive and finite, got %v", r.SeismicMagnitude)

	assert.Less(t, r.ShockwaveRadius50kPa, r.ShockwaveRadius20kPa)
	assert.Less(t, r.ShockwaveRadius20kPa, r.ShockwaveRadius5kPa)

	// Land impact: no tsunami.
	assert.Nil(t, r.Tsunami)

	// Pass-through copies.
	assert.Equal(t, 17000.0, r.ImpactSpeed)
	assert.Equal(t, 45.0, r.ImpactAngle)
}

func TestRun_OceanImpactHasTsunami(t *testing.T) {
	r := NewEngine().Run(testAsteroid, midPacific)

	require.NotNil(t, r.Tsunami)
	assert.Greater(t, r.Tsunami.SourceWaveHeight, 0.0)
	assert.Greater(t, r.Tsunami.PotentialRunup, 0.0)
}

func TestRun_Deterministic(t *testing.T) {
	e := NewEngine()
	a := e.Run(testAsteroid, newYork)
	b := e.Run(testAsteroid, newYork)
	assert.Equal(t, a, b)
}

func TestRun_LegacyShockwaveAlias(t *testing.T) {
	r := NewEngine().Run(testAsteroid, newYork)
	assert.Equal(t, r.ShockwaveRadius20kPa, r.ShockwaveRadius)
}

func TestRun_AngleIndependence(t *testing.T) {
	// The angle is carried through for display but never attenuates
	// energy or any derived radius.
	shallow := testAsteroid
	shallow.Angle = 5
	steep := testAsteroid
	steep.Angle = 90

	e := NewEngine()
	a := e.Run(shallow, newYork)
	b := e.Run(steep, newYork)

	assert.Equal(t, a.ImpactEnergy, b.ImpactEnergy)
	assert.Equal(t, a.CraterDiameter, b.CraterDiameter)
	assert.Equal(t, a.FireballRadius, b.FireballRadius)
	assert.Equal(t, 5.0, a.ImpactAngle)
	assert.Equal(t, 90.0, b.ImpactAngle)
}

func TestRun_Monotonicity(t *testing.T) {
	e := NewEngine()
	base := e.Run(testAsteroid, newYork)

	bigger := testAsteroid
	bigger.Diameter *= 2
	faster := testAsteroid
	faster.Speed *= 2
	denser := testAsteroid
	denser.Density *= 1.5

	for name, variant := range map[string]model.AsteroidParameters{
		"diameter": bigger,
		"speed":    faster,
		"density":  denser,
	} {
		r := e.Run(variant, newYork)
		assert.Greater(t, r.MassKg, base.MassKg*0.99, "%s: mass", name)
		assert.Greater(t, r.ImpactEnergy, base.ImpactEnergy, "%s: energy", name)
		assert.Greater(t, r.CraterDiameter, base.CraterDiameter, "%s: crater", name)
		assert.Greater(t, r.FireballRadius, base.FireballRadius, "%s: fireball", name)
		assert.Greater(t, r.SeismicMagnitude, base.SeismicMagnitude, "%s: magnitude", name)
	}
}

func TestRun_DamageZoneOrderAndCasualties(t *testing.T) {
	r := NewEngine().Run(testAsteroid, newYork)

	require.Len(t, r.DamageZones, 5)
	expected := []model.ZoneType{
		model.ZoneCrater, model.ZoneFireball, model.ZoneRadiation,
		model.ZoneShockwave, model.ZoneSeismic,
	}
	for i, z := range r.DamageZones {
		assert.Equal(t, expected[i], z.Type, "zone %d", i)
		assert.GreaterOrEqual(t, z.Casualties, int64(0))

		radiusKM := z.Radius / 1000
		want := math.Round(newYork.PopulationDensity * math.Pi * radiusKM * radiusKM * mortalityRates[z.Severity])
		assert.Equal(t, int64(want), z.Casualties, "zone %s", z.Type)
	}

	// Seismic ring is twice the 20 kPa shockwave radius.
	assert.InDelta(t, 2*r.ShockwaveRadius20kPa, r.DamageZones[4].Radius, 1e-9)
}

func TestRun_ZeroPopulationDensity(t *testing.T) {
	loc := newYork
	loc.PopulationDensity = 0
	r := NewEngine().Run(testAsteroid, loc)
	for _, z := range r.DamageZones {
		assert.Equal(t, int64(0), z.Casualties)
	}
}

func TestRun_EarthquakeComparisonPresent(t *testing.T) {
	r := NewEngine().Run(testAsteroid, newYork)
	require.NotNil(t, r.EarthquakeComparison)
	assert.NotEmpty(t, r.EarthquakeComparison.Classification)
	assert.NotEmpty(t, r.EarthquakeComparison.RelativeText)
}

func TestRun_TypeDefaultDensity(t *testing.T) {
	noDensity := model.AsteroidParameters{Type: model.AsteroidIron, Diameter: 100, Speed: 17000, Angle: 45}
	explicit := noDensity
	explicit.Density = 7800

	e := NewEngine()
	assert.Equal(t, e.Run(explicit, midPacific).MassKg, e.Run(noDensity, midPacific).MassKg)
}

func TestRun_DegenerateInputsStillReturn(t *testing.T) {
	// No-throw contract: zero diameter produces zero mass/energy and a
	// NaN/-Inf magnitude, never a panic or error.
	r := NewEngine().Run(model.AsteroidParameters{Type: model.AsteroidStone}, midPacific)

	assert.Equal(t, 0.0, r.MassKg)
	assert.Equal(t, 0.0, r.ImpactEnergy)
	assert.True(t, math.IsInf(r.SeismicMagnitude, -1) || math.IsNaN(r.SeismicMagnitude))
	require.NotNil(t, r.EarthquakeComparison)
}
