// Package quake holds the static historical earthquake catalog and the
// magnitude classification and comparison logic built on it.
package quake

import (
	"sort"

	"github.com/meteorlab/impact-cli/internal/model"
)

// catalog lists notable instrumentally recorded earthquakes. It is sorted
// ascending by magnitude at init and never mutated afterwards; every lookup
// in this package assumes that order.
var catalog = []model.NotableEarthquake{
	{
		Name:      "Long Island, NY",
		Year:      1884,
		Magnitude: 5.0,
		Location:  "New York, USA",
		Summary:   "Largest known earthquake in the New York City area.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/ushis634",
	},
	{
		Name:      "Newcastle",
		Year:      1989,
		Magnitude: 5.6,
		Location:  "New South Wales, Australia",
		Summary:   "Damaging intraplate earthquake in eastern Australia.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/usp0004201",
	},
	{
		Name:      "Double Spring Flat",
		Year:      1994,
		Magnitude: 6.0,
		Location:  "Nevada, USA",
		Summary:   "Largest Nevada earthquake of the 1990s.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/nc269151",
	},
	{
		Name:      "Long Beach",
		Year:      1933,
		Magnitude: 6.4,
		Location:  "California, USA",
		Summary:   "Destructive earthquake on the Newport-Inglewood fault.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/ci3362965",
	},
	{
		Name:      "Northridge",
		Year:      1994,
		Magnitude: 6.7,
		Location:  "California, USA",
		Summary:   "Blind thrust earthquake beneath the San Fernando Valley.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/ci3144585",
	},
	{
		Name:      "Loma Prieta",
		Year:      1989,
		Magnitude: 6.9,
		Location:  "California, USA",
		Summary:   "Santa Cruz Mountains event felt across the Bay Area.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/nc216859",
	},
	{
		Name:      "Kobe",
		Year:      1995,
		Magnitude: 6.9,
		Location:  "Japan",
		Summary:   "Great Hanshin earthquake, devastating urban damage.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/usp0006rew",
	},
	{
		Name:      "Haiti",
		Year:      2010,
		Magnitude: 7.0,
		Location:  "Haiti",
		Summary:   "Catastrophic shallow strike-slip earthquake near Port-au-Prince.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/usp000h60h",
	},
	{
		Name:      "San Francisco",
		Year:      1906,
		Magnitude: 7.9,
		Location:  "California, USA",
		Summary:   "Rupture of the northern San Andreas fault.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/nc00000001",
	},
	{
		Name:      "Sichuan",
		Year:      2008,
		Magnitude: 7.9,
		Location:  "China",
		Summary:   "Wenchuan earthquake along the Longmenshan fault.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/usp000g650",
	},
	{
		Name:      "Sumatra-Andaman",
		Year:      2004,
		Magnitude: 9.1,
		Location:  "Indonesia",
		Summary:   "Megathrust rupture that generated the Indian Ocean tsunami.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/official20041226005853450_30",
	},
	{
		Name:      "Tohoku",
		Year:      2011,
		Magnitude: 9.1,
		Location:  "Japan",
		Summary:   "Megathrust earthquake and tsunami off the Pacific coast of Tohoku.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/official20110311054624120_30",
	},
	{
		Name:      "Valdivia",
		Year:      1960,
		Magnitude: 9.5,
		Location:  "Chile",
		Summary:   "Largest earthquake ever instrumentally recorded.",
		SourceURL: "https://earthquake.usgs.gov/earthquakes/eventpage/official19600522191120_30",
	},
}

func init() {
	sort.SliceStable(catalog, func(i, j int) bool {
		return catalog[i].Magnitude < catalog[j].Magnitude
	})
}

// Catalog returns a copy of the reference catalog in ascending magnitude
// order. Callers may not rely on mutating the returned slice affecting
// package state.
func Catalog() []model.NotableEarthquake {
	out := make([]model.NotableEarthquake, len(catalog))
	copy(out, catalog)
	return out
}
