// Package strategies contains the decision logic driven by the replay loop.
//
// A strategy is a pure function of the current ledger and one bar. Any
// lookback it needs (EMA, RSI) is already baked into the bar by the
// indicator enrichment pass; strategies never reach into the series.
package strategies

import (
	"errors"
	"fmt"
	"strings"

	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

// ErrUnknown reports a strategy name with no registered implementation.
var ErrUnknown = errors.New("unknown strategy")

// Strategy decides, for one bar, whether to buy, close, or hold.
// Implementations hold only fixed configuration; all dynamic state lives in
// the ledger that is threaded through Execute.
type Strategy interface {
	Name() string
	Execute(l ledger.Ledger, bar market.Bar) (ledger.Ledger, error)
}

// Settings carries the tunable strategy parameters. A zero field falls back
// to that strategy's default, so callers only set what their configuration
// overrides.
type Settings struct {
	EMAThreshold     float64
	RSIBuyThreshold  float64
	RSISellThreshold float64
	TakeProfitPct    float64
}

// ByName builds a strategy, applying any non-zero settings over its
// defaults. Supported: buy-and-hold, ema-cross, rsi.
func ByName(name string, exec *ledger.Executor, s Settings) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "buy-and-hold", "buyandhold", "":
		return NewBuyAndHold(exec), nil

	case "ema-cross", "emacross", "ema":
		st := NewEMACross(exec)
		st.Threshold = s.EMAThreshold
		return st, nil

	case "rsi", "rsi-reversion":
		st := NewRSIReversion(exec)
		if s.RSIBuyThreshold != 0 {
			st.BuyThreshold = s.RSIBuyThreshold
		}
		if s.RSISellThreshold != 0 {
			st.SellThreshold = s.RSISellThreshold
		}
		if s.TakeProfitPct != 0 {
			st.TakeProfitPct = s.TakeProfitPct
		}
		return st, nil

	default:
		return nil, fmt.Errorf("strategies: %q: %w (supported: buy-and-hold, ema-cross, rsi)", name, ErrUnknown)
	}
}
