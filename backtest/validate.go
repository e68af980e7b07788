package backtest

import (
	"fmt"

	"github.com/damienborowski/AlphaFinity-v2/market"
)

// validateSeries rejects a run before any bar is processed. Benchmark and
// strategy series must both exist, be non-empty, and span the same
// timeframe (equal first and last dates).
func validateSeries(benchmark, strategy *market.Series) error {
	if benchmark == nil || strategy == nil {
		return fmt.Errorf("backtest: benchmark and strategy series are required")
	}
	if benchmark.Len() == 0 || strategy.Len() == 0 {
		return fmt.Errorf("backtest: benchmark and strategy series must have bars")
	}

	bFirst, _ := benchmark.First()
	bLast, _ := benchmark.Last()
	sFirst, _ := strategy.First()
	sLast, _ := strategy.Last()

	if !bFirst.Date.Equal(sFirst.Date.Time) || !bLast.Date.Equal(sLast.Date.Time) {
		return fmt.Errorf("backtest: benchmark (%s..%s) and strategy (%s..%s) series must cover the same timeframe",
			bFirst.Date.Format(market.DateLayout), bLast.Date.Format(market.DateLayout),
			sFirst.Date.Format(market.DateLayout), sLast.Date.Format(market.DateLayout))
	}
	return nil
}
