package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-oddity/decompose"
)

func newDecomposeCommand(a *app) *cobra.Command {
	var period int

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Split the series into detrended, seasonal and residual components",
		Long: `decompose removes a moving-average trend (window = trend_fraction of the
series length), averages the detrended series over the period and reports the
residual. Without --period the period is estimated from the FFT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSeries(cmd)
			if err != nil {
				return err
			}

			p := decompose.Auto()
			if period > 0 {
				p = decompose.Explicit(period)
			}

			res, err := decompose.Decompose(s, p, a.cfg.Decompose.Options()...)
			if err != nil {
				return err
			}
			a.logger.Debug("decomposed", "period", res.Period, "window", res.Window, "requested", p.String())

			out := cmd.OutOrStdout()
			heading(out, "Decomposition of %s points (window %d, period %d)", count(s.Len()), res.Window, res.Period)

			tbl := newTable(out)
			tbl.AppendHeader(table.Row{"#", "observed", "trend", "detrended", "seasonal", "residual"})
			for i := range res.Detrended.Len() {
				tbl.AppendRow(table.Row{
					i,
					num(s.At(i)),
					num(res.Trend.At(i)),
					num(res.Detrended.At(i)),
					num(res.Seasonal.At(i)),
					num(res.Residual.At(i)),
				})
			}
			tbl.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&period, "period", "p", 0, "seasonal period in samples (0 = estimate)")

	return cmd
}
