package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-oddity/outlier"
)

func newOutliersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "outliers",
		Short: "Report observations outside mean ± 3 standard deviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSeries(cmd)
			if err != nil {
				return err
			}

			lower, upper, err := outlier.Bounds(s)
			if err != nil {
				return err
			}
			found, err := outlier.Detect(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Bounds [%s, %s] over %s points", num(lower), num(upper), count(s.Len()))
			renderOutliers(out, found, nil)
			return nil
		},
	}
}

// renderOutliers prints one row per outlier. When expected is non-nil it
// adds the model expectation and the deviation from it.
func renderOutliers(out io.Writer, found []outlier.Outlier, expected []float64) {
	if len(found) == 0 {
		success(out, "no outliers")
		return
	}

	tbl := newTable(out)
	if expected == nil {
		tbl.AppendHeader(table.Row{"#", "value"})
	} else {
		tbl.AppendHeader(table.Row{"#", "value", "expected", "deviation"})
	}
	for _, o := range found {
		row := table.Row{o.Index, highlight(num(o.Value))}
		if expected != nil {
			row = append(row, num(expected[o.Index]), num(o.Value-expected[o.Index]))
		}
		tbl.AppendRow(row)
	}
	tbl.AppendFooter(table.Row{"total", count(len(found))})
	tbl.Render()
}
