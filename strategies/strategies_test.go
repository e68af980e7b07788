package strategies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

func bar(day int, close float64) market.Bar {
	return market.Bar{
		Date:  market.NewDate(2020, time.January, day),
		Close: close,
	}
}

func TestByName(t *testing.T) {
	exec := ledger.NewExecutor()

	cases := map[string]string{
		"buy-and-hold":  "Buy and Hold",
		"BuyAndHold":    "Buy and Hold",
		"":              "Buy and Hold",
		"ema-cross":     "EMA Cross",
		"EMA":           "EMA Cross",
		"rsi":           "RSI Reversion",
		"rsi-reversion": "RSI Reversion",
	}
	for name, want := range cases {
		s, err := ByName(name, exec, Settings{})
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, want, s.Name())
	}

	_, err := ByName("macd", exec, Settings{})
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestByName_AppliesSettings(t *testing.T) {
	exec := ledger.NewExecutor()

	t.Run("rsi overrides", func(t *testing.T) {
		s, err := ByName("rsi", exec, Settings{
			RSIBuyThreshold:  30,
			RSISellThreshold: 70,
			TakeProfitPct:    5,
		})
		require.NoError(t, err)

		rsi := s.(*RSIReversion)
		assert.Equal(t, 30.0, rsi.BuyThreshold)
		assert.Equal(t, 70.0, rsi.SellThreshold)
		assert.Equal(t, 5.0, rsi.TakeProfitPct)
	})

	t.Run("rsi zero settings keep defaults", func(t *testing.T) {
		s, err := ByName("rsi", exec, Settings{})
		require.NoError(t, err)

		rsi := s.(*RSIReversion)
		assert.Equal(t, 25.0, rsi.BuyThreshold)
		assert.Equal(t, 75.0, rsi.SellThreshold)
		assert.Equal(t, 2.0, rsi.TakeProfitPct)
	})

	t.Run("ema band", func(t *testing.T) {
		s, err := ByName("ema-cross", exec, Settings{EMAThreshold: 0.5})
		require.NoError(t, err)
		assert.Equal(t, 0.5, s.(*EMACross).Threshold)
	})
}

func TestBuyAndHold(t *testing.T) {
	exec := ledger.NewExecutor()
	s := NewBuyAndHold(exec)

	l, err := s.Execute(ledger.New(100), bar(1, 10))
	require.NoError(t, err)
	require.Len(t, l.Account.OpenPositions, 1)
	assert.Equal(t, 10, l.Account.OpenPositions[0].Quantity)

	// Holding: every later bar is a no-op.
	next, err := s.Execute(l, bar(2, 20))
	require.NoError(t, err)
	assert.Equal(t, l, next)
}

func TestEMACross(t *testing.T) {
	exec := ledger.NewExecutor()
	s := NewEMACross(exec)

	t.Run("warm-up bar holds", func(t *testing.T) {
		l := ledger.New(100)
		b := bar(1, 10)
		b.EMA = 0

		next, err := s.Execute(l, b)
		require.NoError(t, err)
		assert.Equal(t, l, next)
	})

	t.Run("close above EMA buys when flat", func(t *testing.T) {
		b := bar(1, 12)
		b.EMA = 10

		next, err := s.Execute(ledger.New(100), b)
		require.NoError(t, err)
		assert.Len(t, next.Account.OpenPositions, 1)
	})

	t.Run("close above EMA holds when already long", func(t *testing.T) {
		open := bar(1, 12)
		open.EMA = 10
		l, err := s.Execute(ledger.New(100), open)
		require.NoError(t, err)

		again := bar(2, 13)
		again.EMA = 10
		next, err := s.Execute(l, again)
		require.NoError(t, err)
		assert.Equal(t, l, next)
	})

	t.Run("close below EMA exits", func(t *testing.T) {
		open := bar(1, 12)
		open.EMA = 10
		l, err := s.Execute(ledger.New(100), open)
		require.NoError(t, err)
		require.Len(t, l.Account.OpenPositions, 1)

		exit := bar(2, 9)
		exit.EMA = 10
		next, err := s.Execute(l, exit)
		require.NoError(t, err)
		assert.Empty(t, next.Account.OpenPositions)
		assert.Len(t, next.Closed(), 1)
	})

	t.Run("threshold widens the band", func(t *testing.T) {
		banded := NewEMACross(exec)
		banded.Threshold = 5

		b := bar(1, 12)
		b.EMA = 10

		l := ledger.New(100)
		next, err := banded.Execute(l, b)
		require.NoError(t, err)
		assert.Equal(t, l, next, "12 does not clear 10+5")
	})
}

func TestRSIReversion(t *testing.T) {
	exec := ledger.NewExecutor()
	s := NewRSIReversion(exec)

	t.Run("warm-up bar holds", func(t *testing.T) {
		l := ledger.New(100)
		b := bar(1, 10)
		b.RSI = 0

		next, err := s.Execute(l, b)
		require.NoError(t, err)
		assert.Equal(t, l, next)
	})

	t.Run("oversold buys when flat", func(t *testing.T) {
		b := bar(1, 10)
		b.RSI = 20

		next, err := s.Execute(ledger.New(100), b)
		require.NoError(t, err)
		assert.Len(t, next.Account.OpenPositions, 1)
	})

	t.Run("overbought closes the position", func(t *testing.T) {
		open := bar(1, 10)
		open.RSI = 20
		l, err := s.Execute(ledger.New(100), open)
		require.NoError(t, err)

		exit := bar(2, 11)
		exit.RSI = 80
		next, err := s.Execute(l, exit)
		require.NoError(t, err)
		assert.Empty(t, next.Account.OpenPositions)
	})

	t.Run("take-profit fires between the thresholds", func(t *testing.T) {
		open := bar(1, 10)
		open.RSI = 20
		l, err := s.Execute(ledger.New(100), open)
		require.NoError(t, err)

		// RSI 50 is neutral, but a 5% unrealized gain clears the 2%
		// take-profit and closes anyway.
		mid := bar(2, 10.5)
		mid.RSI = 50
		next, err := s.Execute(l, mid)
		require.NoError(t, err)
		assert.Empty(t, next.Account.OpenPositions)

		closed := next.Closed()
		require.Len(t, closed, 1)
		assert.InDelta(t, 5.0, closed[0].Profit, 1e-9)
	})

	t.Run("neutral bar under the take-profit holds", func(t *testing.T) {
		open := bar(1, 10)
		open.RSI = 20
		l, err := s.Execute(ledger.New(100), open)
		require.NoError(t, err)

		mid := bar(2, 10.1)
		mid.RSI = 50
		next, err := s.Execute(l, mid)
		require.NoError(t, err)
		assert.Len(t, next.Account.OpenPositions, 1)
	})
}
