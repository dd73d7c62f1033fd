package commands

import (
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	oddity "github.com/cwbudde/algo-oddity"
)

func newGPRCommand(a *app) *cobra.Command {
	var (
		noise float64
		opts  oddity.GPROptions
	)

	cmd := &cobra.Command{
		Use:   "gpr",
		Short: "Smooth the series with Gaussian Process regression",
		Long: `gpr conditions a Gaussian Process on every observation, using the sample
index as coordinate, and prints the posterior mean and standard deviation at
the same positions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSeries(cmd)
			if err != nil {
				return err
			}

			k, err := opts.ResolveKernel()
			if err != nil {
				return err
			}

			mean, cov, err := oddity.FitGPR(s, noise, opts)
			if err != nil {
				return err
			}
			a.logger.Debug("gp fitted", "kernel", k.String(), "noise_std", noise, "points", s.Len())

			out := cmd.OutOrStdout()
			heading(out, "GP posterior, %s, noise %s", k.String(), num(noise))

			tbl := newTable(out)
			tbl.AppendHeader(table.Row{"#", "observed", "mean", "std dev"})
			for i, m := range mean {
				tbl.AppendRow(table.Row{
					i,
					num(s.At(i)),
					num(m),
					num(math.Sqrt(math.Max(cov[i][i], 0))),
				})
			}
			tbl.Render()
			return nil
		},
	}

	def := oddity.DefaultGPROptions()
	flags := cmd.Flags()
	flags.Float64Var(&noise, "noise", 0.1, "observation noise standard deviation")
	flags.StringVarP(&opts.Kernel, "kernel", "k", def.Kernel, "kernel: rbf, periodic, locally_periodic")
	flags.Float64VarP(&opts.LengthScale, "length-scale", "l", def.LengthScale, "kernel length scale")
	flags.Float64Var(&opts.SignalVariance, "signal-variance", def.SignalVariance, "kernel signal variance")
	flags.Float64Var(&opts.Period, "period", def.Period, "period of the periodic kernels")

	return cmd
}
