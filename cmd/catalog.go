package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/meteorlab/impact-cli/internal/quake"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the historical earthquake reference catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog in ascending magnitude order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MAGNITUDE\tYEAR\tNAME\tLOCATION")
		for _, e := range quake.Catalog() {
			fmt.Fprintf(tw, "M%.1f\t%d\t%s\t%s\n", e.Magnitude, e.Year, e.Name, e.Location)
		}
		return tw.Flush()
	},
}

var catalogCompareCmd = &cobra.Command{
	Use:   "compare <magnitude>",
	Short: "Compare a seismic magnitude against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return eris.Wrapf(err, "parse magnitude %q", args[0])
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		cmp := quake.Compare(m)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cmp)
		}

		fmt.Printf("M%.1f: %s earthquake\n", m, cmp.Classification)
		fmt.Println(cmp.RelativeText)
		if cmp.ExceedsRecorded && cmp.Nearest != nil {
			fmt.Printf("Largest recorded: %d %s (M%.1f)\n",
				cmp.Nearest.Year, cmp.Nearest.Name, cmp.Nearest.Magnitude)
		}
		return nil
	},
}

func init() {
	catalogCompareCmd.Flags().Bool("json", false, "print the comparison as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCompareCmd)
	rootCmd.AddCommand(catalogCmd)
}
