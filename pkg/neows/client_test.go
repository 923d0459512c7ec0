package neows

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteorlab/impact-cli/internal/model"
)

const lookupResponse = `{
	"id": "3542519",
	"name": "(2010 PK9)",
	"designation": "2010 PK9",
	"is_potentially_hazardous_asteroid": true,
	"estimated_diameter": {
		"meters": {
			"estimated_diameter_min": 129.03,
			"estimated_diameter_max": 288.53
		}
	},
	"close_approach_data": [
		{
			"close_approach_date": "2026-07-17",
			"relative_velocity": {"kilometers_per_second": "18.127"}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("TEST_KEY", WithBaseURL(srv.URL), WithRateLimit(1000))
}

func TestLookup(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/3542519", r.URL.Path)
		assert.Equal(t, "TEST_KEY", r.URL.Query().Get("api_key"))
		w.Write([]byte(lookupResponse)) //nolint:errcheck
	})

	obj, err := c.Lookup(context.Background(), "3542519")
	require.NoError(t, err)
	assert.Equal(t, "(2010 PK9)", obj.Name)
	assert.True(t, obj.IsHazardous)
	assert.Equal(t, 129.03, obj.EstimatedDiameter.Meters.Min)
	require.Len(t, obj.CloseApproaches, 1)
	assert.Equal(t, "18.127", obj.CloseApproaches[0].RelativeVelocity.KilometersPerSecond)
}

func TestLookup_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	_, err := c.Lookup(context.Background(), "0000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLookup_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json")) //nolint:errcheck
	})

	_, err := c.Lookup(context.Background(), "3542519")
	require.Error(t, err)
}

func TestLookup_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(lookupResponse)) //nolint:errcheck
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Lookup(ctx, "3542519")
	require.Error(t, err)
}

func TestToAsteroidParameters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(lookupResponse)) //nolint:errcheck
	})
	obj, err := c.Lookup(context.Background(), "3542519")
	require.NoError(t, err)

	p := obj.ToAsteroidParameters()
	assert.Equal(t, model.AsteroidStone, p.Type)
	assert.InDelta(t, (129.03+288.53)/2, p.Diameter, 1e-9)
	assert.InDelta(t, 18127, p.Speed, 1e-6)
	assert.Equal(t, 45.0, p.Angle)
	assert.Equal(t, 3000.0, p.Density)
}

func TestToAsteroidParameters_Defaults(t *testing.T) {
	var obj Object
	p := obj.ToAsteroidParameters()

	assert.Equal(t, 0.0, p.Diameter)
	assert.Equal(t, 17000.0, p.Speed)
	assert.Equal(t, 45.0, p.Angle)
}

func TestToAsteroidParameters_BadVelocity(t *testing.T) {
	var obj Object
	obj.EstimatedDiameter.Meters.Min = 100
	obj.EstimatedDiameter.Meters.Max = 200
	obj.CloseApproaches = []CloseApproach{{}}

	p := obj.ToAsteroidParameters()
	assert.Equal(t, 150.0, p.Diameter)
	// Unparseable velocity falls back to the default speed.
	assert.Equal(t, 17000.0, p.Speed)
}
