package commands

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-oddity/detector"
)

func newDetectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Fit the two-stage GP model and report residual outliers",
		Long: `detect fits a trend GP, then a seasonal GP on what the trend leaves, and
flags observations whose residual against the combined posterior mean lies
outside 3 standard deviations. Stage parameters come from the detector
section of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSeries(cmd)
			if err != nil {
				return err
			}

			params, err := a.cfg.Detector.Params()
			if err != nil {
				return err
			}

			d := detector.New(detector.WithParams(params), detector.WithLogger(a.logger))
			report, err := d.Detect(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Two-stage GP over %s points", count(s.Len()))
			keyValues(out, [][2]string{
				{"trend", params.Trend.Kernel.String() + ", noise " + num(params.Trend.NoiseStd)},
				{"seasonal", params.Seasonal.Kernel.String() + ", noise " + num(params.Seasonal.NoiseStd)},
			})
			renderOutliers(out, report.Outliers, report.Model.Mean)
			return nil
		},
	}
}
