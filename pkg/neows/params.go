package neows

import (
	"strconv"

	"github.com/meteorlab/impact-cli/internal/model"
)

// Defaults applied when the NeoWs record lacks a usable value.
const (
	defaultSpeedMS  = 17000.0 // typical Earth-crossing impact velocity
	defaultAngleDeg = 45.0
)

// ToAsteroidParameters derives simulator inputs from a NeoWs object:
// diameter is the mean of the estimated bounds, speed comes from the first
// close-approach record, and the body is treated as stone with its
// type-default density. NeoWs does not expose spectral type, so no denser
// composition can be inferred.
func (o *Object) ToAsteroidParameters() model.AsteroidParameters {
	p := model.AsteroidParameters{
		Type:  model.AsteroidStone,
		Speed: defaultSpeedMS,
		Angle: defaultAngleDeg,
	}
	p.Density = p.Type.DefaultDensity()

	min := o.EstimatedDiameter.Meters.Min
	max := o.EstimatedDiameter.Meters.Max
	if min > 0 || max > 0 {
		p.Diameter = (min + max) / 2
	}

	if len(o.CloseApproaches) > 0 {
		kps, err := strconv.ParseFloat(o.CloseApproaches[0].RelativeVelocity.KilometersPerSecond, 64)
		if err == nil && kps > 0 {
			p.Speed = kps * 1000
		}
	}

	return p
}
