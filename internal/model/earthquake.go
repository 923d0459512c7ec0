package model

// NotableEarthquake is one entry of the static historical reference catalog.
type NotableEarthquake struct {
	Name      string  `json:"name"`
	Year      int     `json:"year"`
	Magnitude float64 `json:"magnitude"` // Mw
	Location  string  `json:"location,omitempty"`
	Summary   string  `json:"summary,omitempty"`
	SourceURL string  `json:"source_url,omitempty"`
}

// MagnitudeBracket holds the catalog entries straddling a computed magnitude.
type MagnitudeBracket struct {
	Lower *NotableEarthquake `json:"lower,omitempty"`
	Upper *NotableEarthquake `json:"upper,omitempty"`
}

// EarthquakeComparison places a computed seismic magnitude against the
// historical catalog.
type EarthquakeComparison struct {
	Classification  string             `json:"classification"`
	Nearest         *NotableEarthquake `json:"nearest,omitempty"`
	Bracket         *MagnitudeBracket  `json:"bracket,omitempty"`
	RelativeText    string             `json:"relative_text"`
	ExceedsRecorded bool               `json:"exceeds_recorded"`
}
