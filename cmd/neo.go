package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meteorlab/impact-cli/internal/geo"
	"github.com/meteorlab/impact-cli/internal/model"
	"github.com/meteorlab/impact-cli/pkg/neows"
)

var (
	neoLat      float64
	neoLon      float64
	neoCity     string
	neoSimulate bool
)

var neoCmd = &cobra.Command{
	Use:   "neo <designation>",
	Short: "Fetch a near-Earth object from NASA NeoWs",
	Long:  "Looks up an asteroid by NeoWs id or designation and prints the derived simulation parameters, or runs an impact simulation with them.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client := neows.NewClient(cfg.NeoWs.Key,
			neows.WithBaseURL(cfg.NeoWs.BaseURL),
			neows.WithRateLimit(cfg.NeoWs.RPS),
		)

		obj, err := client.Lookup(ctx, args[0])
		if err != nil {
			return eris.Wrapf(err, "lookup NEO %s", args[0])
		}

		asteroid := obj.ToAsteroidParameters()
		zap.L().Info("NEO fetched",
			zap.String("name", obj.Name),
			zap.Float64("diameter_m", asteroid.Diameter),
			zap.Float64("speed_ms", asteroid.Speed),
			zap.Bool("hazardous", obj.IsHazardous),
		)

		if !neoSimulate {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(asteroid)
		}

		location := model.ImpactLocation{
			Latitude:  neoLat,
			Longitude: neoLon,
			CityName:  neoCity,
		}
		est := geo.NewClassifier().PopulationDensity(location.Latitude, location.Longitude)
		location.PopulationDensity = est.Density

		if err := validateRequest(asteroid, location); err != nil {
			return err
		}

		engine, err := initEngine()
		if err != nil {
			return err
		}

		formatResults(os.Stdout, asteroid, location, engine.Run(asteroid, location))
		return nil
	},
}

func init() {
	neoCmd.Flags().BoolVar(&neoSimulate, "simulate", false, "run an impact simulation with the fetched parameters")
	neoCmd.Flags().Float64Var(&neoLat, "lat", 0, "impact latitude for --simulate")
	neoCmd.Flags().Float64Var(&neoLon, "lon", 0, "impact longitude for --simulate")
	neoCmd.Flags().StringVar(&neoCity, "city", "", "nearby city name for --simulate")
	rootCmd.AddCommand(neoCmd)
}
