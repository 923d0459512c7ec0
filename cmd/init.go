package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/meteorlab/impact-cli/internal/geo"
	"github.com/meteorlab/impact-cli/internal/simulation"
	"github.com/meteorlab/impact-cli/internal/store"
)

// initStore opens the configured persistence backend.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "impact.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		var maxConns, minConns int32
		if cfg.Store.Pool != nil {
			maxConns = cfg.Store.Pool.MaxConns
			minConns = cfg.Store.Pool.MinConns
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, maxConns, minConns)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initEngine builds the simulation engine, optionally refining the land
// classification with shapefile-derived bounds.
func initEngine() (*simulation.Engine, error) {
	var opts []geo.Option
	if cfg.Geo.LandShapefile != "" {
		bounds, err := geo.LoadBoundsFromShapefile(cfg.Geo.LandShapefile)
		if err != nil {
			return nil, eris.Wrap(err, "load land shapefile")
		}
		zap.L().Info("loaded land bounds from shapefile",
			zap.String("path", cfg.Geo.LandShapefile),
			zap.Int("bounds", len(bounds)),
		)
		opts = append(opts, geo.WithExtraLandBounds(bounds))
	}

	return simulation.NewEngine(simulation.WithClassifier(geo.NewClassifier(opts...))), nil
}
