package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meteorlab/impact-cli/internal/model"
)

// printer groups large numbers for readability (1,234,567).
var printer = message.NewPrinter(language.English)

func formatResults(w io.Writer, asteroid model.AsteroidParameters, location model.ImpactLocation, r *model.SimulationResults) {
	fmt.Fprintf(w, "Impact of %.0f m %s asteroid at %.1f km/s (%.4f, %.4f)\n\n",
		asteroid.Diameter, asteroid.Type, asteroid.Speed/1000, location.Latitude, location.Longitude)

	printer.Fprintf(w, "Mass:              %.3e kg\n", r.MassKg)
	printer.Fprintf(w, "Impact energy:     %.3e J (%.2f Mt TNT)\n", r.ImpactEnergy, r.TNTEquivalent/1e6)
	printer.Fprintf(w, "Crater:            %.0f m diameter, %.0f m deep\n", r.CraterDiameter, r.CraterDepth)
	printer.Fprintf(w, "Fireball radius:   %.0f m\n", r.FireballRadius)
	printer.Fprintf(w, "Thermal radius:    %.0f m\n", r.ThermalRadius)
	printer.Fprintf(w, "Shockwave radius:  %.0f m (50 kPa), %.0f m (20 kPa), %.0f m (5 kPa)\n",
		r.ShockwaveRadius50kPa, r.ShockwaveRadius20kPa, r.ShockwaveRadius5kPa)
	printer.Fprintf(w, "Peak blast wind:   %.0f m/s\n", r.PeakWindSpeed50kPa)
	printer.Fprintf(w, "Seismic magnitude: M%.1f\n", r.SeismicMagnitude)

	if cmp := r.EarthquakeComparison; cmp != nil {
		fmt.Fprintf(w, "                   %s earthquake. %s\n", cmp.Classification, cmp.RelativeText)
	}

	fmt.Fprintln(w, "\nDamage zones:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ZONE\tRADIUS (m)\tSEVERITY\tEST. CASUALTIES")
	for _, z := range r.DamageZones {
		printer.Fprintf(tw, "%s\t%.0f\t%s\t%d\n", z.Type, z.Radius, z.Severity, z.Casualties)
	}
	tw.Flush()

	if t := r.Tsunami; t != nil {
		fmt.Fprintln(w, "\nTsunami (ocean impact):")
		printer.Fprintf(w, "  Source wave height:    %.1f m\n", t.SourceWaveHeight)
		printer.Fprintf(w, "  Height at 100 km:      %.1f m\n", t.WaveHeightAt100km)
		printer.Fprintf(w, "  Potential run-up:      %.1f m\n", t.PotentialRunup)
		printer.Fprintf(w, "  Affected coastline:    %.0f m radius\n", t.AffectedCoastlineRadius)
	}
}

func formatRunsList(w io.Writer, runs []model.Run) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tSTATUS\tMAGNITUDE\tCREATED")
	for _, run := range runs {
		magnitude := "-"
		if run.Results != nil {
			magnitude = fmt.Sprintf("M%.1f", run.Results.SeismicMagnitude)
		}
		label := run.Request.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			run.ID, label, run.Status, magnitude, run.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
