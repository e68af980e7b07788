package strategies

import (
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

// BuyAndHold opens a max-size position on the first affordable bar and
// never trades again. The replay driver's end-of-run close realizes the
// result.
type BuyAndHold struct {
	exec *ledger.Executor
}

func NewBuyAndHold(exec *ledger.Executor) *BuyAndHold {
	return &BuyAndHold{exec: exec}
}

func (s *BuyAndHold) Name() string { return "Buy and Hold" }

func (s *BuyAndHold) Execute(l ledger.Ledger, bar market.Bar) (ledger.Ledger, error) {
	if len(l.Account.OpenPositions) > 0 {
		return l, nil
	}

	return s.exec.Buy(l, ledger.Order{
		Time:  bar.Date.Time,
		Price: bar.Close,
		Size:  ledger.Max,
	}), nil
}
