package model

import "time"

// RunStatus represents the current state of a stored simulation run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// SimulationRequest pairs the two engine inputs for persistence and transport.
type SimulationRequest struct {
	Asteroid AsteroidParameters `json:"asteroid"`
	Location ImpactLocation     `json:"location"`
	Label    string             `json:"label,omitempty"` // optional scenario name
}

// Run is one persisted simulation invocation.
type Run struct {
	ID        string             `json:"id"`
	Request   SimulationRequest  `json:"request"`
	Status    RunStatus          `json:"status"`
	Results   *SimulationResults `json:"results,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
