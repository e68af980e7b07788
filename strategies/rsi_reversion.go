package strategies

import (
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

// RSIReversion buys oversold bars and sells overbought ones, with a
// take-profit override that closes any position whose unrealized gain
// exceeds TakeProfitPct regardless of where RSI sits.
type RSIReversion struct {
	exec *ledger.Executor

	BuyThreshold  float64 // RSI below this buys
	SellThreshold float64 // RSI above this closes
	TakeProfitPct float64 // unrealized gain percentage that forces a close
}

func NewRSIReversion(exec *ledger.Executor) *RSIReversion {
	return &RSIReversion{
		exec:          exec,
		BuyThreshold:  25,
		SellThreshold: 75,
		TakeProfitPct: 2.0,
	}
}

func (s *RSIReversion) Name() string { return "RSI Reversion" }

func (s *RSIReversion) Execute(l ledger.Ledger, bar market.Bar) (ledger.Ledger, error) {
	if bar.RSI == 0 {
		return l, nil
	}

	order := ledger.Order{
		Time:  bar.Date.Time,
		Price: bar.Close,
		Size:  ledger.Max,
	}

	switch {
	case bar.RSI < s.BuyThreshold:
		if len(l.Account.OpenPositions) == 0 {
			return s.exec.Buy(l, order), nil
		}
	case bar.RSI > s.SellThreshold:
		if len(l.Account.OpenPositions) > 0 {
			return s.exec.CloseAll(l, l.Open(), order)
		}
	}

	return s.exec.TakeProfit(l, bar, s.TakeProfitPct)
}
