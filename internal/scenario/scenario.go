// Package scenario loads batch simulation scenarios from YAML documents or
// XLSX sheets.
package scenario

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/meteorlab/impact-cli/internal/model"
)

// Scenario is one named simulation input pair.
type Scenario struct {
	Name     string                   `yaml:"name" json:"name"`
	Asteroid model.AsteroidParameters `yaml:"asteroid" json:"asteroid"`
	Location model.ImpactLocation     `yaml:"location" json:"location"`
}

// Load reads scenarios from a file, dispatching on extension:
// .yaml/.yml or .xlsx.
func Load(path string) ([]Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, eris.Errorf("scenario: unsupported file type %s", filepath.Ext(path))
	}
}

// LoadYAML reads a YAML file containing a list of scenarios under a
// top-level "scenarios" key.
func LoadYAML(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "scenario: read %s", path)
	}

	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "scenario: unmarshal %s", path)
	}
	if len(doc.Scenarios) == 0 {
		return nil, eris.Errorf("scenario: no scenarios in %s", path)
	}

	return doc.Scenarios, nil
}
