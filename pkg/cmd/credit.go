package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/credit"
)

func init() {
	RootCmd.AddCommand(CreditCmd)
}

var CreditCmd = &cobra.Command{
	Use:          "credit",
	Short:        "credit scoring and loan portfolio risk",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Credit == nil {
			return errors.New("config file has no credit section")
		}

		score, err := credit.Score(cfg.Credit.ScoreInput())
		if err != nil {
			return err
		}
		score.WriteReport(os.Stdout)

		if loan := cfg.Credit.Loan; loan != nil {
			risk, err := credit.DefaultParameters(score.Score, loan.Amount, loan.Collateral)
			if err != nil {
				return err
			}
			risk.WriteReport(os.Stdout)
		}

		if len(cfg.Credit.Portfolio) > 0 {
			portfolioRisk, err := credit.AnalyzePortfolio(cfg.Credit.Portfolio)
			if err != nil {
				return err
			}
			portfolioRisk.WriteReport(os.Stdout)
		}
		return nil
	},
}
