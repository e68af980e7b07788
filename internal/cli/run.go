package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/damienborowski/AlphaFinity-v2/analytics"
	"github.com/damienborowski/AlphaFinity-v2/backtest"
	"github.com/damienborowski/AlphaFinity-v2/indicators"
	"github.com/damienborowski/AlphaFinity-v2/journal"
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
	"github.com/damienborowski/AlphaFinity-v2/strategies"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		strategyName string
		capital      float64
		journalPath  string
	)

	cmd := &cobra.Command{
		Use:   "run <benchmark.json> <strategy.json>",
		Short: "Backtest a strategy against a benchmark series",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			benchmark, err := loadSeries(args[0])
			if err != nil {
				return err
			}
			strategySeries, err := loadSeries(args[1])
			if err != nil {
				return err
			}

			if strategyName == "" {
				strategyName = cfg.Strategy.Name
			}
			exec := ledger.NewExecutor()
			strat, err := strategies.ByName(strategyName, exec, cfg.Strategy.Settings())
			if err != nil {
				return err
			}

			if capital == 0 {
				capital = cfg.Account.StartingCapital
			}

			runner := &backtest.Runner{
				Strategy:        strat,
				Executor:        exec,
				StartingCapital: capital,
				Indicators: []indicators.Indicator{
					indicators.NewRSI(cfg.Strategy.RSIPeriod),
					indicators.NewEMA(cfg.Strategy.EMAPeriod),
				},
			}

			res, err := runner.Run(benchmark, strategySeries)
			if err != nil {
				return err
			}

			analytics.WriteReport(cmd.OutOrStdout(), strat.Name(), res.Report)

			if journalPath == "" && cfg.Journal.Enabled {
				journalPath = cfg.Journal.DBPath
			}
			if journalPath != "" {
				j, err := journal.NewSQLite(journalPath)
				if err != nil {
					return err
				}
				defer j.Close()

				runID, err := j.RecordRun(strat.Name(), res)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded run %s in %s\n", runID, journalPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", "", "Strategy: buy-and-hold, ema-cross, rsi")
	cmd.Flags().Float64Var(&capital, "capital", 0, "Starting capital (default from config)")
	cmd.Flags().StringVar(&journalPath, "journal", "", "SQLite database to record the run in")

	return cmd
}

func loadSeries(path string) (*market.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := market.ParseSeriesJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
