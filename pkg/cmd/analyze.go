package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/analysis"
)

func init() {
	RootCmd.AddCommand(AnalyzeCmd)
}

var AnalyzeCmd = &cobra.Command{
	Use:          "analyze",
	Short:        "run the qualitative analyses (SWOT, 5 whys, fishbone, barriers) from a config file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Analysis == nil {
			return errors.New("config file has no analysis section")
		}

		a := cfg.Analysis
		if a.SWOT != nil {
			a.SWOT.WriteReport(os.Stdout)
		}

		if a.FiveWhys != nil {
			result, err := analysis.FiveWhys(a.FiveWhys.Problem, a.FiveWhys.Whys)
			if err != nil {
				return err
			}
			result.WriteReport(os.Stdout)
		}

		if a.Fishbone != nil {
			fishbone, err := analysis.NewFishbone(a.Fishbone.Problem, a.Fishbone.Categories)
			if err != nil {
				return err
			}
			fishbone.WriteReport(os.Stdout)
		}

		if a.Barriers != nil {
			result, err := analysis.BarrierAnalysis(a.Barriers.Hazard, a.Barriers.Target, a.Barriers.Barriers)
			if err != nil {
				return err
			}
			result.WriteReport(os.Stdout)
		}
		return nil
	},
}
