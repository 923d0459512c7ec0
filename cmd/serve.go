package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meteorlab/impact-cli/internal/model"
	"github.com/meteorlab/impact-cli/internal/quake"
	"github.com/meteorlab/impact-cli/internal/simulation"
	"github.com/meteorlab/impact-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for browser clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

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

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(engine, st, cfg.Server.AllowedOrigins),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter wires the API routes. The CORS layer exists because the main
// consumer is a browser-rendered globe UI on another origin.
func newRouter(engine *simulation.Engine, st store.Store, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/simulate", handleSimulate(engine, st))
	r.Get("/api/runs", handleListRuns(st))
	r.Get("/api/runs/{id}", handleGetRun(st))

	r.Get("/api/catalog", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, quake.Catalog())
	})
	r.Get("/api/catalog/compare", handleCompare())

	return r
}

func handleSimulate(engine *simulation.Engine, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.SimulationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := validateRequest(req.Asteroid, req.Location); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		results := engine.Run(req.Asteroid, req.Location)

		run, err := st.CreateRun(r.Context(), req)
		if err != nil {
			zap.L().Error("create run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "persist run")
			return
		}
		if err := st.UpdateRunResults(r.Context(), run.ID, results); err != nil {
			zap.L().Error("store results failed", zap.String("run_id", run.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "persist results")
			return
		}

		zap.L().Info("simulation complete",
			zap.String("run_id", run.ID),
			zap.Float64("magnitude", results.SeismicMagnitude),
			zap.Bool("tsunami", results.Tsunami != nil),
		)

		writeJSON(w, http.StatusOK, map[string]any{
			"run_id":  run.ID,
			"results": results,
		})
	}
}

func handleListRuns(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))

		runs, err := st.ListRuns(r.Context(), store.RunFilter{
			Status: model.RunStatus(q.Get("status")),
			Label:  q.Get("label"),
			Limit:  limit,
		})
		if err != nil {
			zap.L().Error("list runs failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "list runs")
			return
		}
		if runs == nil {
			runs = []model.Run{}
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

func handleGetRun(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := st.GetRun(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		writeJSON(w, http.StatusOK, run)
	}
}

func handleCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := strconv.ParseFloat(r.URL.Query().Get("magnitude"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "magnitude query parameter is required")
			return
		}
		writeJSON(w, http.StatusOK, quake.Compare(m))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
