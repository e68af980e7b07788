package backtest

import (
	"fmt"

	"github.com/damienborowski/AlphaFinity-v2/analytics"
	"github.com/damienborowski/AlphaFinity-v2/indicators"
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
	"github.com/damienborowski/AlphaFinity-v2/strategies"
)

// DefaultStartingCapital is used when the runner is not given one.
const DefaultStartingCapital = 1000.0

// Default warm-up periods for the enrichment pass.
const (
	DefaultRSIPeriod = 14
	DefaultEMAPeriod = 100
)

// Runner replays one pair of series through a strategy, start to finish,
// synchronously. Each run is self-contained: nothing is shared between runs
// and nothing survives past the returned Result.
type Runner struct {
	Strategy strategies.Strategy
	Executor *ledger.Executor

	// StartingCapital defaults to DefaultStartingCapital when zero.
	StartingCapital float64

	// Indicators used for the enrichment pass. Defaults to RSI(14) and
	// EMA(100), matching the strategies' expectations.
	Indicators []indicators.Indicator
}

// Run validates the input series, enriches the strategy series with
// indicator values, folds the strategy over it bar by bar (one snapshot per
// bar), force-closes whatever is still open at the final close, and builds
// the analytics report.
func (r *Runner) Run(benchmark, strategySeries *market.Series) (Result, error) {
	if r.Strategy == nil {
		return Result{}, fmt.Errorf("backtest: a strategy is required")
	}
	if err := validateSeries(benchmark, strategySeries); err != nil {
		return Result{}, err
	}

	exec := r.Executor
	if exec == nil {
		exec = ledger.NewExecutor()
	}

	inds := r.Indicators
	if inds == nil {
		inds = []indicators.Indicator{
			indicators.NewRSI(DefaultRSIPeriod),
			indicators.NewEMA(DefaultEMAPeriod),
		}
	}
	enriched, err := indicators.Enrich(strategySeries, inds...)
	if err != nil {
		return Result{}, err
	}

	capital := r.StartingCapital
	if capital == 0 {
		capital = DefaultStartingCapital
	}

	rs := RunState{Ledger: ledger.New(capital)}

	for _, bar := range enriched.Bars {
		next, err := r.Strategy.Execute(rs.Ledger, bar)
		if err != nil {
			return Result{}, fmt.Errorf("backtest: strategy %q at %s: %w",
				r.Strategy.Name(), bar.Date.Format(market.DateLayout), err)
		}
		rs.Ledger = next
		rs = rs.withState(snapshot(rs.Ledger, bar))
	}

	last, err := enriched.Last()
	if err != nil {
		return Result{}, err
	}
	rs.Ledger, err = closeOut(exec, rs.Ledger, last)
	if err != nil {
		return Result{}, err
	}

	first, _ := enriched.First()
	report := analytics.Build(rs.Ledger, first.Date.Time, last.Date.Time, benchmark)

	return Result{RunState: rs, Report: report}, nil
}

// snapshot marks the account to market at the bar's close: open position
// value plus cash, and its distance from starting capital.
func snapshot(l ledger.Ledger, bar market.Bar) State {
	openValue := 0.0
	for _, tx := range l.Account.OpenPositions {
		openValue += float64(tx.Quantity) * bar.Close
	}

	value := openValue + l.Account.CurrentCapital
	profit := value - l.Account.StartingCapital

	pct := 0.0
	if l.Account.StartingCapital != 0 {
		pct = profit / l.Account.StartingCapital * 100
	}

	return State{
		Time:         bar.Date.Time,
		AccountValue: value,
		Profit:       profit,
		ProfitPct:    pct,
	}
}

// closeOut force-closes every remaining open transaction at the last bar's
// close, each with its own matched quantity. No position survives past the
// run boundary.
func closeOut(exec *ledger.Executor, l ledger.Ledger, last market.Bar) (ledger.Ledger, error) {
	opens := l.Open()
	if len(opens) == 0 {
		return l, nil
	}

	var err error
	for _, open := range opens {
		order := ledger.Order{
			Time:  last.Date.Time,
			Price: last.Close,
			Size:  ledger.Explicit(open.Quantity),
		}
		l, err = exec.Close(l, open, order)
		if err != nil {
			return ledger.Ledger{}, err
		}
	}
	return l, nil
}
