package commands

import (
	"github.com/spf13/cobra"
)

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print summary statistics of the series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSeries(cmd)
			if err != nil {
				return err
			}

			sum, err := s.Describe()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Series %s", a.inputName())
			keyValues(out, [][2]string{
				{"points", count(sum.Length)},
				{"mean", num(sum.Mean)},
				{"std dev", num(sum.StdDev)},
				{"variance", num(sum.Variance)},
				{"min", num(sum.Min) + " @ " + count(sum.MinPos)},
				{"max", num(sum.Max) + " @ " + count(sum.MaxPos)},
				{"range", num(sum.Range)},
				{"skewness", num(sum.Skewness)},
				{"kurtosis", num(sum.Kurtosis)},
			})
			return nil
		},
	}
}
