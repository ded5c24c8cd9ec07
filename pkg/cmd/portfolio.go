package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/config"
	"github.com/riskcraft/riskcraft/pkg/montecarlo"
)

func init() {
	RootCmd.AddCommand(PortfolioCmd)
}

var PortfolioCmd = &cobra.Command{
	Use:          "portfolio",
	Short:        "correlated multi-asset Monte Carlo simulation",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Portfolio == nil {
			return errors.New("config file has no portfolio section")
		}

		correlations, err := cfg.Portfolio.BuildCorrelations()
		if err != nil {
			return err
		}

		result, err := montecarlo.SimulatePortfolio(cfg.Portfolio.Assets, correlations, cfg.Portfolio.Parameters())
		if err != nil {
			return err
		}
		result.WriteReport(os.Stdout)
		return nil
	},
}

// loadConfig reads the file behind the global --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if len(configFile) == 0 {
		return nil, errors.New("--config option is required")
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, err
	}
	return config.Load(configFile)
}
