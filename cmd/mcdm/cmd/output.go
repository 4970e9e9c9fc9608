package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcdm/analysis"
)

// render writes rep in the requested format.
func render(w io.Writer, format string, rep analysis.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}

		return enc.Close()
	case "table":
		return renderTable(w, rep)
	}

	return fmt.Errorf("unknown output format %q", format)
}

func renderTable(w io.Writer, rep analysis.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s run %s (%s)\n\n", rep.Kind, rep.ID, rep.CreatedAt.Format("2006-01-02 15:04:05Z07:00"))

	fmt.Fprintln(tw, "CRITERION\tDIRECTION\tWEIGHT")
	for j, name := range rep.CriteriaNames {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, rep.Directions[j], num(rep.Weights, j))
	}

	if rep.Topsis != nil {
		t := rep.Topsis
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "RANK\tALTERNATIVE\tCLOSENESS\tD+\tD-")
		for _, i := range t.Order() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				t.Ranking[i], rep.AlternativeNames[i], num(t.Closeness, i), num(t.DistancePositive, i), num(t.DistanceNegative, i))
		}
	}

	return tw.Flush()
}

func num(v []float64, i int) string {
	if i >= len(v) {
		return "-"
	}

	return strconv.FormatFloat(v[i], 'f', 4, 64)
}
