package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/risk/stress"
)

func init() {
	RootCmd.AddCommand(StressCmd)
}

var StressCmd = &cobra.Command{
	Use:          "stress",
	Short:        "apply stress scenarios to a portfolio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Stress == nil {
			return errors.New("config file has no stress section")
		}

		for _, scenario := range cfg.Stress.Scenarios {
			scenario.WriteReport(os.Stdout)

			result, err := stress.Apply(cfg.Stress.Portfolio, scenario)
			if err != nil {
				return err
			}
			result.WriteReport(os.Stdout)
		}
		return nil
	},
}
