package cmd

import (
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/chart"
	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/montecarlo"
	"github.com/riskcraft/riskcraft/pkg/report"
)

func init() {
	SimulateCmd.Flags().Float64("initial-price", 100, "initial asset price")
	SimulateCmd.Flags().Float64("drift", 0.08, "expected annual return")
	SimulateCmd.Flags().Float64("volatility", 0.2, "annual volatility")
	SimulateCmd.Flags().Int("days", 252, "number of trading days to simulate")
	SimulateCmd.Flags().Int("paths", 1000, "number of simulation paths")
	SimulateCmd.Flags().Float64("percentile", 5, "percentile for the potential loss summary")
	SimulateCmd.Flags().Int64("seed", 42, "random seed")
	SimulateCmd.Flags().Int("runs", 1, "number of runs with consecutive seeds, for sampling-error inspection")
	SimulateCmd.Flags().String("chart", "", "write a PNG chart of the simulated paths to this file")
	RootCmd.AddCommand(SimulateCmd)
}

var SimulateCmd = &cobra.Command{
	Use:          "simulate",
	Short:        "single-asset Monte Carlo price simulation",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := montecarlo.SimulationParameters{}

		var err error
		if params.InitialValue, err = cmd.Flags().GetFloat64("initial-price"); err != nil {
			return err
		}
		if params.Drift, err = cmd.Flags().GetFloat64("drift"); err != nil {
			return err
		}
		if params.Volatility, err = cmd.Flags().GetFloat64("volatility"); err != nil {
			return err
		}
		if params.HorizonDays, err = cmd.Flags().GetInt("days"); err != nil {
			return err
		}
		if params.PathCount, err = cmd.Flags().GetInt("paths"); err != nil {
			return err
		}
		if params.Percentile, err = cmd.Flags().GetFloat64("percentile"); err != nil {
			return err
		}
		if params.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
			return err
		}

		runs, err := cmd.Flags().GetInt("runs")
		if err != nil {
			return err
		}
		if runs < 1 {
			return errors.New("--runs must be at least 1")
		}

		chartFile, err := cmd.Flags().GetString("chart")
		if err != nil {
			return err
		}

		result, err := montecarlo.Simulate(params)
		if err != nil {
			return err
		}
		result.WriteReport(os.Stdout)

		if runs > 1 {
			if err := compareSeeds(params, runs); err != nil {
				return err
			}
		}

		if chartFile != "" {
			f, err := os.Create(chartFile)
			if err != nil {
				return errors.Wrapf(err, "can not create chart file %s", chartFile)
			}
			defer f.Close()

			if err := chart.RenderPaths(result, f); err != nil {
				return errors.Wrap(err, "can not render path chart")
			}
			log.Infof("wrote path chart to %s", chartFile)
		}
		return nil
	},
}

// compareSeeds reruns the simulation with consecutive seeds and reports how
// stable the percentile price is across runs.
func compareSeeds(params montecarlo.SimulationParameters, runs int) error {
	var percentilePrices floats.Slice

	bar := pb.Full.Start(runs)
	results := make([]*montecarlo.SimulationResult, 0, runs)
	for i := 0; i < runs; i++ {
		p := params
		p.Seed = params.Seed + int64(i)

		result, err := montecarlo.Simulate(p)
		if err != nil {
			bar.Finish()
			return err
		}
		results = append(results, result)
		percentilePrices = percentilePrices.Push(result.PercentileValue)
		bar.Increment()
	}
	bar.Finish()

	t := report.NewTableWriter(os.Stdout)
	t.AppendHeader([]interface{}{"Seed", "Percentile Price", "Potential Loss"})
	for _, result := range results {
		t.AppendRow([]interface{}{
			result.Parameters.Seed,
			report.Money(result.PercentileValue),
			report.Money(result.PotentialLoss),
		})
	}
	t.Render()

	log.Infof("percentile price across %d seeds: mean %s, stdev %.4f",
		runs, report.Money(percentilePrices.Mean()), percentilePrices.Stdev())
	return nil
}
