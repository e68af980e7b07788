package strategies

import (
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

// EMACross goes long while price trades above its EMA and exits when it
// falls back below.
// - EMA of 0 means the indicator is still warming up: hold.
// - close > EMA and flat: buy max
// - close < EMA and holding: close everything
type EMACross struct {
	exec *ledger.Executor

	// Threshold widens the band around the EMA a signal must clear.
	Threshold float64
}

func NewEMACross(exec *ledger.Executor) *EMACross {
	return &EMACross{exec: exec}
}

func (s *EMACross) Name() string { return "EMA Cross" }

func (s *EMACross) Execute(l ledger.Ledger, bar market.Bar) (ledger.Ledger, error) {
	if bar.EMA == 0 {
		return l, nil
	}

	order := ledger.Order{
		Time:  bar.Date.Time,
		Price: bar.Close,
		Size:  ledger.Max,
	}

	switch {
	case bar.Close > bar.EMA+s.Threshold:
		if len(l.Account.OpenPositions) == 0 {
			return s.exec.Buy(l, order), nil
		}
	case bar.Close < bar.EMA-s.Threshold:
		if len(l.Account.OpenPositions) > 0 {
			return s.exec.CloseAll(l, l.Open(), order)
		}
	}

	return l, nil
}
