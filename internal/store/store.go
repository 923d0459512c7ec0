// Package store persists simulation runs behind a driver-agnostic interface
// with SQLite and Postgres backends.
package store

import (
	"context"

	"github.com/meteorlab/impact-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Label  string          `json:"label,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for simulation runs.
type Store interface {
	CreateRun(ctx context.Context, req model.SimulationRequest) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	UpdateRunResults(ctx context.Context, runID string, results *model.SimulationResults) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
