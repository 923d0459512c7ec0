package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteorlab/impact-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testRequest(label string) model.SimulationRequest {
	return model.SimulationRequest{
		Asteroid: model.AsteroidParameters{
			Type:     model.AsteroidIron,
			Diameter: 457,
			Speed:    17000,
			Angle:    45,
		},
		Location: model.ImpactLocation{
			Latitude:          40.7128,
			Longitude:         -74.006,
			PopulationDensity: 10947,
			CityName:          "New York",
		},
		Label: label,
	}
}

func TestSQLite_CreateRun_And_GetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testRequest(""))
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusQueued, run.Status)

	fetched, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, fetched.ID)
	assert.Equal(t, model.AsteroidIron, fetched.Request.Asteroid.Type)
	assert.Equal(t, "New York", fetched.Request.Location.CityName)
	assert.Nil(t, fetched.Results)
}

func TestSQLite_GetRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_UpdateRunStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testRequest(""))
	require.NoError(t, err)

	err = st.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed)
	require.NoError(t, err)

	fetched, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, fetched.Status)
}

func TestSQLite_UpdateRunStatus_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateRunStatus(context.Background(), "no-such-id", model.RunStatusComplete)
	require.Error(t, err)
}

func TestSQLite_UpdateRunResults(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testRequest(""))
	require.NoError(t, err)

	results := &model.SimulationResults{
		ImpactEnergy:     7.2e18,
		MassKg:           3.9e11,
		CraterDiameter:   8200,
		SeismicMagnitude: 7.1,
		DamageZones: []model.DamageZone{
			{Type: model.ZoneCrater, Radius: 4100, Severity: model.SeverityTotal, Casualties: 575000},
		},
	}
	err = st.UpdateRunResults(ctx, run.ID, results)
	require.NoError(t, err)

	fetched, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, fetched.Status)
	require.NotNil(t, fetched.Results)
	assert.Equal(t, 7.2e18, fetched.Results.ImpactEnergy)
	require.Len(t, fetched.Results.DamageZones, 1)
	assert.Equal(t, model.ZoneCrater, fetched.Results.DamageZones[0].Type)
}

func TestSQLite_ListRuns(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.CreateRun(ctx, testRequest("a"))
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, testRequest("b"))
	require.NoError(t, err)

	runs, err := st.ListRuns(ctx, RunFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSQLite_ListRuns_FilterByStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testRequest(""))
	require.NoError(t, err)
	err = st.UpdateRunStatus(ctx, run.ID, model.RunStatusComplete)
	require.NoError(t, err)

	_, err = st.CreateRun(ctx, testRequest(""))
	require.NoError(t, err)

	runs, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete, Limit: 10})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestSQLite_ListRuns_FilterByLabel(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.CreateRun(ctx, testRequest("batch-1"))
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, testRequest("batch-2"))
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, testRequest("batch-1"))
	require.NoError(t, err)

	runs, err := st.ListRuns(ctx, RunFilter{Label: "batch-1", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	for _, r := range runs {
		assert.Equal(t, "batch-1", r.Request.Label)
	}
}

func TestSQLite_ListRuns_Empty(t *testing.T) {
	st := newTestSQLiteStore(t)

	runs, err := st.ListRuns(context.Background(), RunFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSQLite_Migrate_Idempotent(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.Migrate(context.Background()))
}
