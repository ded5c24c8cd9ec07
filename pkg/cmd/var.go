package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/risk"
)

func init() {
	VaRCmd.Flags().Float64Slice("returns", nil, "historical periodic returns, e.g. --returns 0.01,-0.02,0.005")
	VaRCmd.Flags().Float64("confidence", 0.95, "confidence level inside (0, 1)")
	VaRCmd.Flags().Float64("investment", 1000000, "investment value")
	VaRCmd.Flags().Int("horizon", 1, "time horizon in days (parametric method)")
	VaRCmd.Flags().String("method", "all", "historical, parametric, conditional or all")
	RootCmd.AddCommand(VaRCmd)
}

var VaRCmd = &cobra.Command{
	Use:          "var",
	Short:        "value at risk calculations over a historical return sample",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		returnValues, err := cmd.Flags().GetFloat64Slice("returns")
		if err != nil {
			return err
		}
		confidence, err := cmd.Flags().GetFloat64("confidence")
		if err != nil {
			return err
		}
		investment, err := cmd.Flags().GetFloat64("investment")
		if err != nil {
			return err
		}
		horizon, err := cmd.Flags().GetInt("horizon")
		if err != nil {
			return err
		}
		method, err := cmd.Flags().GetString("method")
		if err != nil {
			return err
		}

		changed := map[string]struct{}{}
		cmd.Flags().Visit(func(f *flag.Flag) {
			changed[f.Name] = struct{}{}
		})

		returns := floats.Slice(returnValues)
		if returns.Length() == 0 {
			// fall back to the var section of the config file; flags given on
			// the command line still win over the file values
			cfg, err := loadConfig(cmd)
			if err != nil {
				return errors.Wrap(err, "no --returns given and no usable config file")
			}
			if cfg.VaR == nil {
				return errors.New("config file has no var section")
			}
			returns = cfg.VaR.Returns
			if _, ok := changed["confidence"]; !ok {
				confidence = cfg.VaR.ConfidenceLevel
			}
			if _, ok := changed["investment"]; !ok {
				investment = cfg.VaR.InvestmentValue
			}
			if _, ok := changed["horizon"]; !ok && cfg.VaR.HorizonDays > 0 {
				horizon = cfg.VaR.HorizonDays
			}
		}

		runHistorical := method == "all" || method == "historical"
		runParametric := method == "all" || method == "parametric"
		runConditional := method == "all" || method == "conditional"
		if !runHistorical && !runParametric && !runConditional {
			return errors.Errorf("unknown method %q", method)
		}

		if runHistorical {
			summary, err := risk.Historical(returns, confidence, investment)
			if err != nil {
				return err
			}
			summary.WriteReport(os.Stdout)
		}

		if runParametric {
			mean, stdDev := risk.SampleMoments(returns)
			summary, err := risk.Parametric(mean, stdDev, confidence, investment, horizon)
			if err != nil {
				return err
			}
			summary.WriteReport(os.Stdout)
		}

		if runConditional {
			summary, err := risk.Conditional(returns, confidence, investment)
			if err != nil {
				return err
			}
			summary.WriteReport(os.Stdout)
		}
		return nil
	},
}
