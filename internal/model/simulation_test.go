package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDensity(t *testing.T) {
	assert.Equal(t, 7800.0, AsteroidIron.DefaultDensity())
	assert.Equal(t, 3000.0, AsteroidStone.DefaultDensity())
	assert.Equal(t, 600.0, AsteroidComet.DefaultDensity())
	// Unknown types fall back to stone.
	assert.Equal(t, 3000.0, AsteroidType("").DefaultDensity())
}

func TestEffectiveDensity(t *testing.T) {
	a := AsteroidParameters{Type: AsteroidComet}
	assert.Equal(t, 600.0, a.EffectiveDensity())

	a.Density = 5500
	assert.Equal(t, 5500.0, a.EffectiveDensity())

	a.Density = -1
	assert.Equal(t, 600.0, a.EffectiveDensity())
}
