package main

import (
	"encoding/json"
	"math"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meteorlab/impact-cli/internal/geo"
	"github.com/meteorlab/impact-cli/internal/model"
)

var (
	simType       string
	simDiameter   float64
	simSpeed      float64
	simAngle      float64
	simDensity    float64
	simLat        float64
	simLon        float64
	simCity       string
	simPopDensity float64
	simJSON       bool
	simSave       bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a single impact simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		asteroid := model.AsteroidParameters{
			Type:     model.AsteroidType(simType),
			Diameter: simDiameter,
			Speed:    simSpeed,
			Angle:    simAngle,
			Density:  simDensity,
		}
		location := model.ImpactLocation{
			Latitude:          simLat,
			Longitude:         simLon,
			PopulationDensity: simPopDensity,
			CityName:          simCity,
		}

		// The engine itself does not validate; degenerate numbers are the
		// caller's problem, so reject them here.
		if err := validateRequest(asteroid, location); err != nil {
			return err
		}

		engine, err := initEngine()
		if err != nil {
			return err
		}

		// Fill density from the reference table when the flag is absent.
		if !cmd.Flags().Changed("pop-density") {
			est := geo.NewClassifier().PopulationDensity(location.Latitude, location.Longitude)
			location.PopulationDensity = est.Density
			if location.CityName == "" && est.CityName != "" {
				zap.L().Debug("population density from reference table",
					zap.String("source", est.CityName),
					zap.Float64("density", est.Density),
				)
			}
		}

		results := engine.Run(asteroid, location)

		if simSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}

			run, err := st.CreateRun(ctx, model.SimulationRequest{Asteroid: asteroid, Location: location})
			if err != nil {
				return eris.Wrap(err, "create run")
			}
			if err := st.UpdateRunResults(ctx, run.ID, results); err != nil {
				return eris.Wrap(err, "store results")
			}
			zap.L().Info("run saved", zap.String("run_id", run.ID))
		}

		if simJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		formatResults(os.Stdout, asteroid, location, results)
		return nil
	},
}

// validateRequest rejects inputs the pure engine would silently turn into
// NaN or zero-energy output.
func validateRequest(a model.AsteroidParameters, loc model.ImpactLocation) error {
	switch {
	case a.Diameter <= 0:
		return eris.New("diameter must be positive")
	case a.Speed <= 0:
		return eris.New("speed must be positive")
	case a.Angle < 0 || a.Angle > 90:
		return eris.New("angle must be in [0, 90] degrees")
	case a.Density < 0:
		return eris.New("density must not be negative")
	case math.IsNaN(loc.Latitude) || loc.Latitude < -90 || loc.Latitude > 90:
		return eris.New("latitude must be in [-90, 90]")
	case math.IsNaN(loc.Longitude) || math.IsInf(loc.Longitude, 0):
		return eris.New("longitude must be finite")
	case loc.PopulationDensity < 0:
		return eris.New("population density must not be negative")
	}
	switch a.Type {
	case model.AsteroidIron, model.AsteroidStone, model.AsteroidComet:
	default:
		return eris.Errorf("unknown asteroid type %q (want iron, stone, or comet)", a.Type)
	}
	return nil
}

func init() {
	simulateCmd.Flags().StringVar(&simType, "type", "stone", "asteroid type: iron, stone, or comet")
	simulateCmd.Flags().Float64Var(&simDiameter, "diameter", 0, "diameter in meters (required)")
	simulateCmd.Flags().Float64Var(&simSpeed, "speed", 17000, "impact speed in m/s")
	simulateCmd.Flags().Float64Var(&simAngle, "angle", 45, "impact angle from horizontal in degrees")
	simulateCmd.Flags().Float64Var(&simDensity, "density", 0, "bulk density in kg/m^3 (default from type)")
	simulateCmd.Flags().Float64Var(&simLat, "lat", 0, "impact latitude in degrees")
	simulateCmd.Flags().Float64Var(&simLon, "lon", 0, "impact longitude in degrees")
	simulateCmd.Flags().StringVar(&simCity, "city", "", "nearby city name (forces land classification)")
	simulateCmd.Flags().Float64Var(&simPopDensity, "pop-density", 0, "population density in people/km^2 (default from reference table)")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "print full results as JSON")
	simulateCmd.Flags().BoolVar(&simSave, "save", false, "persist the run to the configured store")
	_ = simulateCmd.MarkFlagRequired("diameter")
	rootCmd.AddCommand(simulateCmd)
}
