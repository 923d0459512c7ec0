// Package simulation implements the impact physics pipeline: closed-form,
// order-of-magnitude estimates of crater, fireball, blast, seismic, and
// casualty effects for a single asteroid impact.
package simulation

import "math"

// Physical constants and model calibrations.
const (
	airDensity    = 1.225  // kg/m^3, sea level
	targetDensity = 2600.0 // kg/m^3, continental crust
	gravity       = 9.81   // m/s^2

	megatonJoules = 4.184e15 // 1 Mt TNT in joules
	tntTonJoules  = 4.184e9  // 1 ton TNT in joules

	// Seismic coupling efficiency, mid-range of the documented 1e-4..1e-3 band.
	seismicCoupling = 5e-4

	craterScalingK      = 1.6
	craterDepthFraction = 0.2
	thermalFactor       = 1.2 // thermal radius as a multiple of fireball radius
)

// fireballCoeff is calibrated so 1 Mt TNT yields a ~1.5 km fireball radius.
var fireballCoeff = 1500.0 / math.Cbrt(megatonJoules)

// Overpressure thresholds evaluated for the shockwave rings, in kPa.
const (
	OverpressureSevere   = 50.0
	OverpressureModerate = 20.0
	OverpressureLight    = 5.0
)

// Mass treats the body as a uniform sphere of the given diameter and density.
func Mass(diameter, density float64) float64 {
	r := diameter / 2
	return (4.0 / 3.0) * math.Pi * r * r * r * density
}

// KineticEnergy is the raw 1/2 m v^2. The impact angle is deliberately not
// applied as a cosine projection anywhere in this model.
func KineticEnergy(mass, speed float64) float64 {
	return 0.5 * mass * speed * speed
}

// FireballRadius scales with the cube root of energy.
func FireballRadius(energy float64) float64 {
	return fireballCoeff * math.Cbrt(energy)
}

// OverpressureRadius inverts dP = 1.8*sqrt(rho_air)*E^(1/3)/R^(3/2) for R.
// Threshold is in kPa.
func OverpressureRadius(energy, thresholdKPa float64) float64 {
	dP := thresholdKPa * 1000 // Pa
	return math.Pow(1.8*math.Sqrt(airDensity)*math.Cbrt(energy)/dP, 2.0/3.0)
}

// PeakWindSpeed is the blast wind behind the shock front at the given
// overpressure threshold (kPa).
func PeakWindSpeed(thresholdKPa float64) float64 {
	return math.Sqrt(2 * thresholdKPa * 1000 / airDensity)
}

// CraterDiameter applies a pi-group scaling law with a fixed continental
// crust target.
func CraterDiameter(projectileDensity, diameter, speed float64) float64 {
	return craterScalingK *
		math.Cbrt(projectileDensity/targetDensity) *
		math.Pow(diameter, 0.78) *
		math.Pow(speed, 0.44) *
		math.Pow(gravity, -0.22)
}

// SeismicMagnitude converts coupled impact energy to moment magnitude.
func SeismicMagnitude(energy float64) float64 {
	return (2.0/3.0)*math.Log10(seismicCoupling*energy) - 3.2
}

// TNTEquivalentTons expresses impact energy in tons of TNT.
func TNTEquivalentTons(energy float64) float64 {
	return energy / tntTonJoules
}
