// Package tsunami produces order-of-magnitude wave estimates for ocean
// impacts. The model is deliberately simple: a fixed energy coupling
// fraction, a paraboloid cavity, and 1/r deep-water decay.
package tsunami

import (
	"math"

	"github.com/meteorlab/impact-cli/internal/model"
)

const (
	waterDensity   = 1000.0 // kg/m^3
	gravity        = 9.81   // m/s^2
	energyCoupling = 2e-4   // fraction of impact energy entering the wave
	minCavityM     = 50.0   // floor avoids degenerate radii for tiny impacts
	referenceDistM = 100_000.0
	runupFactor    = 2.5
)

// Estimate derives wave metrics from the impact energy (J) and transient
// crater diameter (m). It always returns a record.
func Estimate(impactEnergy, craterDiameter float64) *model.TsunamiResults {
	cavityRadius := math.Max(0.6*craterDiameter/2, minCavityM)

	waveEnergy := energyCoupling * impactEnergy

	// PE of a displaced paraboloid: ~ rho*g*pi*R^2*H^2/2, solved for H.
	sourceHeight := math.Sqrt(2 * waveEnergy / (waterDensity * gravity * math.Pi * cavityRadius * cavityRadius))

	heightAt100km := sourceHeight * (cavityRadius / referenceDistM)

	return &model.TsunamiResults{
		SourceWaveHeight:        sourceHeight,
		WaveHeightAt100km:       heightAt100km,
		PotentialRunup:          runupFactor * heightAt100km,
		AffectedCoastlineRadius: sourceHeight * cavityRadius, // where deep-water height decays to 1 m
	}
}
