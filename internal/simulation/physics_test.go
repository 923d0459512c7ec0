package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMass_UniformSphere(t *testing.T) {
	// D=100m, rho=3000: V = 4/3*pi*50^3 = 523598.78 m^3
	m := Mass(100, 3000)
	assert.InDelta(t, 523598.78*3000, m, 1e4)
}

func TestKineticEnergy(t *testing.T) {
	assert.InDelta(t, 0.5*1e9*17000*17000, KineticEnergy(1e9, 17000), 1)
}

func TestFireballRadius_MegatonCalibration(t *testing.T) {
	// The coefficient is calibrated so 1 Mt TNT gives ~1.5 km.
	assert.InDelta(t, 1500, FireballRadius(4.184e15), 1)
}

func TestFireballRadius_CubeRootScaling(t *testing.T) {
	// 8x the energy doubles the radius.
	r1 := FireballRadius(1e15)
	r8 := FireballRadius(8e15)
	assert.InDelta(t, 2*r1, r8, 1e-6)
}

func TestOverpressureRadius_Ordering(t *testing.T) {
	for _, energy := range []float64{1e12, 1e15, 1e18, 1e21} {
		r50 := OverpressureRadius(energy, OverpressureSevere)
		r20 := OverpressureRadius(energy, OverpressureModerate)
		r5 := OverpressureRadius(energy, OverpressureLight)
		assert.Less(t, r50, r20, "energy %g", energy)
		assert.Less(t, r20, r5, "energy %g", energy)
	}
}

func TestOverpressureRadius_Inversion(t *testing.T) {
	// Substituting the radius back into the forward relation must
	// reproduce the threshold.
	const energy = 4.184e15
	const thresholdKPa = 20.0
	r := OverpressureRadius(energy, thresholdKPa)
	dP := 1.8 * math.Sqrt(airDensity) * math.Cbrt(energy) / math.Pow(r, 1.5)
	assert.InDelta(t, thresholdKPa*1000, dP, 1)
}

func TestPeakWindSpeed(t *testing.T) {
	// v = sqrt(2*50000/1.225) ~ 285.7 m/s at 50 kPa.
	assert.InDelta(t, 285.7, PeakWindSpeed(OverpressureSevere), 0.1)
}

func TestCraterDiameter_Monotonic(t *testing.T) {
	base := CraterDiameter(3000, 100, 17000)
	assert.Greater(t, CraterDiameter(7800, 100, 17000), base, "denser projectile digs a bigger crater")
	assert.Greater(t, CraterDiameter(3000, 200, 17000), base, "bigger projectile digs a bigger crater")
	assert.Greater(t, CraterDiameter(3000, 100, 30000), base, "faster projectile digs a bigger crater")
}

func TestSeismicMagnitude_KnownValue(t *testing.T) {
	// M = (2/3)*log10(5e-4 * 4.184e15) - 3.2
	expected := (2.0/3.0)*math.Log10(5e-4*4.184e15) - 3.2
	assert.InDelta(t, expected, SeismicMagnitude(4.184e15), 1e-9)
	assert.InDelta(t, 5.01, SeismicMagnitude(4.184e15), 0.01)
}

func TestSeismicMagnitude_DegenerateEnergy(t *testing.T) {
	// Zero energy produces -Inf, not a panic: the engine is no-throw and
	// degenerate inputs propagate as degenerate numbers.
	m := SeismicMagnitude(0)
	assert.True(t, math.IsInf(m, -1))
}

func TestTNTEquivalentTons(t *testing.T) {
	assert.InDelta(t, 1e6, TNTEquivalentTons(4.184e15), 1e-3) // 1 Mt
	assert.InDelta(t, 1, TNTEquivalentTons(4.184e9), 1e-9)
}
