package scenario

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/meteorlab/impact-cli/internal/model"
)

// LoadXLSX reads scenarios from the first sheet of an XLSX workbook. The
// first row must be a header containing at least name, type, diameter,
// speed, latitude, and longitude; angle, density, city, and
// population_density are optional.
func LoadXLSX(path string) ([]Scenario, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "scenario: open xlsx %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("scenario: no sheets in %s", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) < 2 {
		return nil, eris.Errorf("scenario: no data rows in %s", path)
	}

	colIdx, err := headerIndex(sheet.Rows[0])
	if err != nil {
		return nil, err
	}

	var scenarios []Scenario
	for i, row := range sheet.Rows[1:] {
		sc, err := rowToScenario(row, colIdx)
		if err != nil {
			return nil, eris.Wrapf(err, "scenario: row %d", i+2)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func headerIndex(header *xlsx.Row) (map[string]int, error) {
	idx := make(map[string]int, len(header.Cells))
	for i, cell := range header.Cells {
		name := strings.ToLower(strings.TrimSpace(cell.String()))
		if name != "" {
			idx[name] = i
		}
	}
	for _, required := range []string{"name", "type", "diameter", "speed", "latitude", "longitude"} {
		if _, ok := idx[required]; !ok {
			return nil, eris.Errorf("scenario: missing required column %q", required)
		}
	}
	return idx, nil
}

func rowToScenario(row *xlsx.Row, colIdx map[string]int) (Scenario, error) {
	cell := func(name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(row.Cells) {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].String())
	}
	num := func(name string) (float64, error) {
		s := cell(name)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, eris.Wrapf(err, "parse column %q", name)
		}
		return v, nil
	}

	var sc Scenario
	sc.Name = cell("name")
	sc.Asteroid.Type = model.AsteroidType(strings.ToLower(cell("type")))
	sc.Location.CityName = cell("city")

	var err error
	if sc.Asteroid.Diameter, err = num("diameter"); err != nil {
		return sc, err
	}
	if sc.Asteroid.Speed, err = num("speed"); err != nil {
		return sc, err
	}
	if sc.Asteroid.Angle, err = num("angle"); err != nil {
		return sc, err
	}
	if sc.Asteroid.Density, err = num("density"); err != nil {
		return sc, err
	}
	if sc.Location.Latitude, err = num("latitude"); err != nil {
		return sc, err
	}
	if sc.Location.Longitude, err = num("longitude"); err != nil {
		return sc, err
	}
	if sc.Location.PopulationDensity, err = num("population_density"); err != nil {
		return sc, err
	}
	return sc, nil
}
