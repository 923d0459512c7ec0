package tsunami

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_MegatonImpact(t *testing.T) {
	// 1 Mt with a 1000 m transient crater: cavity radius 300 m,
	// wave energy 8.368e11 J.
	r := Estimate(4.184e15, 1000)
	require.NotNil(t, r)

	cavity := 300.0
	wantSource := math.Sqrt(2 * 2e-4 * 4.184e15 / (1000 * 9.81 * math.Pi * cavity * cavity))
	assert.InDelta(t, wantSource, r.SourceWaveHeight, 1e-9)
	assert.InDelta(t, wantSource*cavity/100_000, r.WaveHeightAt100km, 1e-9)
	assert.InDelta(t, 2.5*r.WaveHeightAt100km, r.PotentialRunup, 1e-9)
	assert.InDelta(t, wantSource*cavity, r.AffectedCoastlineRadius, 1e-6)
}

func TestEstimate_CavityFloor(t *testing.T) {
	// Craters under ~167 m all clamp to the 50 m cavity floor, so their
	// source heights depend on energy alone.
	a := Estimate(1e12, 10)
	b := Estimate(1e12, 150)
	assert.Equal(t, a.SourceWaveHeight, b.SourceWaveHeight)

	// Above the floor the cavity widens and the source height drops.
	c := Estimate(1e12, 1000)
	assert.Less(t, c.SourceWaveHeight, a.SourceWaveHeight)
}

func TestEstimate_ScalesWithEnergy(t *testing.T) {
	small := Estimate(1e14, 500)
	large := Estimate(1e16, 500)

	// Same cavity, 100x the energy: height scales with sqrt(E).
	assert.InDelta(t, 10*small.SourceWaveHeight, large.SourceWaveHeight, 1e-6)
	assert.Greater(t, large.PotentialRunup, small.PotentialRunup)
}

func TestEstimate_ZeroEnergy(t *testing.T) {
	r := Estimate(0, 0)
	require.NotNil(t, r)
	assert.Equal(t, 0.0, r.SourceWaveHeight)
	assert.Equal(t, 0.0, r.PotentialRunup)
	assert.Equal(t, 0.0, r.AffectedCoastlineRadius)
}
