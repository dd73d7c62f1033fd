package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-oddity/spectral"
)

func newSpectrumCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Print the FFT magnitude of each frequency bin",
		Long: `spectrum zero-pads the series to the next power of two and prints the
magnitude of bins 0..N/2 together with the period each bin corresponds to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSeries(cmd)
			if err != nil {
				return err
			}

			mags := spectral.Magnitudes(s)
			size := mags.Len()
			bins := size/2 + 1
			if limit > 0 && limit < bins {
				bins = limit
			}

			out := cmd.OutOrStdout()
			heading(out, "Spectrum of %s points, FFT size %s", count(s.Len()), count(size))

			tbl := newTable(out)
			tbl.AppendHeader(table.Row{"bin", "period", "magnitude"})
			for k := range bins {
				period := "-"
				if k > 0 {
					period = num(float64(size) / float64(k))
				}
				tbl.AppendRow(table.Row{k, period, num(mags.At(k))})
			}
			tbl.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most this many bins (0 = all up to N/2)")

	return cmd
}
