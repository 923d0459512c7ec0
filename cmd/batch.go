package main

import (
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meteorlab/impact-cli/internal/model"
	"github.com/meteorlab/impact-cli/internal/scenario"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run all scenarios from a YAML or XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scenarios, err := scenario.Load(batchFile)
		if err != nil {
			return err
		}

		engine, err := initEngine()
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		zap.L().Info("processing batch",
			zap.String("file", batchFile),
			zap.Int("scenarios", len(scenarios)),
			zap.Int("concurrency", cfg.Batch.MaxConcurrent),
		)

		var succeeded, failed atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrent)

		for _, sc := range scenarios {
			g.Go(func() error {
				log := zap.L().With(zap.String("scenario", sc.Name))

				if err := validateRequest(sc.Asteroid, sc.Location); err != nil {
					failed.Add(1)
					log.Error("invalid scenario", zap.Error(err))
					return nil // don't abort batch on individual failure
				}

				run, err := st.CreateRun(gctx, model.SimulationRequest{
					Asteroid: sc.Asteroid,
					Location: sc.Location,
					Label:    sc.Name,
				})
				if err != nil {
					failed.Add(1)
					log.Error("create run failed", zap.Error(err))
					return nil
				}

				results := engine.Run(sc.Asteroid, sc.Location)

				if err := st.UpdateRunResults(gctx, run.ID, results); err != nil {
					failed.Add(1)
					log.Error("store results failed", zap.Error(err))
					return nil
				}

				succeeded.Add(1)
				log.Info("scenario complete",
					zap.String("run_id", run.ID),
					zap.Float64("magnitude", results.SeismicMagnitude),
					zap.Bool("tsunami", results.Tsunami != nil),
				)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch processing")
		}

		zap.L().Info("batch complete",
			zap.Int64("succeeded", succeeded.Load()),
			zap.Int64("failed", failed.Load()),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "scenario file (.yaml, .yml, or .xlsx)")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}
