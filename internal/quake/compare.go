package quake

import (
	"fmt"
	"math"

	"github.com/meteorlab/impact-cli/internal/model"
)

// Magnitude classification bands, upper-bound exclusive except Great.
const (
	ClassMicro    = "Micro"
	ClassMinor    = "Minor"
	ClassLight    = "Light"
	ClassModerate = "Moderate"
	ClassStrong   = "Strong"
	ClassMajor    = "Major"
	ClassGreat    = "Great"
)

// comparableDelta is the magnitude distance under which two events are
// described as comparable rather than slightly larger or smaller.
const comparableDelta = 0.05

const exceedsRecordedText = "Larger than any instrumentally recorded tectonic earthquake; released energy has no historical seismic analog."

// Classify returns the qualitative band for a moment magnitude.
func Classify(m float64) string {
	switch {
	case m < 2:
		return ClassMicro
	case m < 4:
		return ClassMinor
	case m < 5:
		return ClassLight
	case m < 6:
		return ClassModerate
	case m < 7:
		return ClassStrong
	case m < 8:
		return ClassMajor
	default:
		return ClassGreat
	}
}

// Compare places a computed magnitude against the historical catalog.
// It never fails: magnitudes above every recorded event come back flagged
// ExceedsRecorded, and an empty catalog yields a nil Nearest.
func Compare(m float64) *model.EarthquakeComparison {
	cmp := &model.EarthquakeComparison{Classification: Classify(m)}

	if len(catalog) == 0 {
		cmp.RelativeText = fmt.Sprintf("No reference events available for magnitude %.1f.", m)
		return cmp
	}

	maxEntry := catalog[len(catalog)-1]
	if m > maxEntry.Magnitude {
		nearest := maxEntry
		cmp.Nearest = &nearest
		cmp.ExceedsRecorded = true
		cmp.RelativeText = exceedsRecordedText
		return cmp
	}

	// Single ascending scan: lower is the last entry <= m, upper the first
	// entry >= m. Lower stays nil only when m is below every entry.
	var lower, upper *model.NotableEarthquake
	for i := range catalog {
		e := catalog[i]
		if e.Magnitude <= m {
			lower = &e
		}
		if upper == nil && e.Magnitude >= m {
			u := e
			upper = &u
		}
	}

	nearest := nearestOf(m, lower, upper)
	cmp.Nearest = nearest
	cmp.Bracket = &model.MagnitudeBracket{Lower: lower, Upper: upper}
	cmp.RelativeText = relativeText(m, lower, upper, nearest)
	return cmp
}

// nearestOf picks whichever bracket entry is closer in magnitude.
// Ties favor lower.
func nearestOf(m float64, lower, upper *model.NotableEarthquake) *model.NotableEarthquake {
	switch {
	case lower == nil:
		return upper
	case upper == nil:
		return lower
	}
	if math.Abs(m-lower.Magnitude) <= math.Abs(upper.Magnitude-m) {
		return lower
	}
	return upper
}

func relativeText(m float64, lower, upper, nearest *model.NotableEarthquake) string {
	if lower != nil && upper != nil && lower.Magnitude != upper.Magnitude {
		return fmt.Sprintf("Between the %d %s earthquake (M%.1f) and the %d %s earthquake (M%.1f).",
			lower.Year, lower.Name, lower.Magnitude,
			upper.Year, upper.Name, upper.Magnitude)
	}
	if nearest == nil {
		return fmt.Sprintf("No reference events available for magnitude %.1f.", m)
	}

	switch {
	case math.Abs(m-nearest.Magnitude) <= comparableDelta:
		return fmt.Sprintf("Comparable to the %d %s earthquake (M%.1f).", nearest.Year, nearest.Name, nearest.Magnitude)
	case m > nearest.Magnitude:
		return fmt.Sprintf("Slightly larger than the %d %s earthquake (M%.1f).", nearest.Year, nearest.Name, nearest.Magnitude)
	default:
		return fmt.Sprintf("Slightly smaller than the %d %s earthquake (M%.1f).", nearest.Year, nearest.Name, nearest.Magnitude)
	}
}
